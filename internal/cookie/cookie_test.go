package cookie

import (
	"reflect"
	"testing"
)

func TestParseEmpty(t *testing.T) {
	for _, in := range []string{"", "   "} {
		if jar := Parse(in); jar.Len() != 0 {
			t.Fatalf("expected empty jar for %q, got %v", in, jar.Names())
		}
	}
}

func TestParseFirstOccurrenceWins(t *testing.T) {
	jar := Parse("a=1; path=/,b=2; path=/,a=3;")
	if got := jar.Names(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("unexpected names: %v", got)
	}
	if v, _ := jar.Get("a"); v != "1" {
		t.Fatalf("expected a=1, got %q", v)
	}
	if v, _ := jar.Get("b"); v != "2" {
		t.Fatalf("expected b=2, got %q", v)
	}
}

func TestParseDecodesValues(t *testing.T) {
	jar := Parse("x=hello%20world;")
	if v, ok := jar.Get("x"); !ok || v != "hello world" {
		t.Fatalf("expected decoded value, got %q", v)
	}
}

func TestParseSkipsGarbage(t *testing.T) {
	jar := Parse("garbage,a=1;")
	if got := jar.Names(); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("unexpected names: %v", got)
	}
	if v, _ := jar.Get("a"); v != "1" {
		t.Fatalf("expected a=1, got %q", v)
	}
	if jar := Parse("no pairs here path=/,still none"); jar.Len() != 0 {
		t.Fatalf("expected empty jar, got %v", jar.Names())
	}
}

func TestParseKeepsUndecodableValue(t *testing.T) {
	jar := Parse("k=100%zz;")
	if v, _ := jar.Get("k"); v != "100%zz" {
		t.Fatalf("expected raw value, got %q", v)
	}
}

func TestParsePortalHeader(t *testing.T) {
	raw := "uid=4242; expires=Sat, 24-Oct-2026 08:00:00 GMT; Max-Age=604800; path=/, " +
		"email=me%40example.com; expires=Sat, 24-Oct-2026 08:00:00 GMT; Max-Age=604800; path=/, " +
		"key=abc%2Fdef%3D%3D; expires=Sat, 24-Oct-2026 08:00:00 GMT; Max-Age=604800; path=/, " +
		"expire_in=1792828800; expires=Sat, 24-Oct-2026 08:00:00 GMT; Max-Age=604800; path=/"
	jar := Parse(raw)
	want := map[string]string{"uid": "4242", "email": "me@example.com", "key": "abc/def==", "expire_in": "1792828800"}
	if jar.Len() != len(want) {
		t.Fatalf("unexpected names: %v", jar.Names())
	}
	for k, v := range want {
		if got, _ := jar.Get(k); got != v {
			t.Fatalf("cookie %s: expected %q, got %q", k, v, got)
		}
	}
	if got := jar.Names()[0]; got != "uid" {
		t.Fatalf("expected insertion order, first name %s", got)
	}
}

func TestString(t *testing.T) {
	var jar Jar
	jar.Set("a", "1")
	jar.Set("b", "hello world")
	if got := jar.String(); got != "a=1; b=hello%20world" {
		t.Fatalf("unexpected header: %q", got)
	}
}

func TestSetKeepsFirst(t *testing.T) {
	var jar Jar
	if !jar.Set("a", "1") {
		t.Fatal("expected first set to store")
	}
	if jar.Set("a", "2") {
		t.Fatal("expected duplicate set to be ignored")
	}
	if v, _ := jar.Get("a"); v != "1" {
		t.Fatalf("expected a=1, got %q", v)
	}
}

func TestValuesSurviveRoundTrip(t *testing.T) {
	for _, v := range []string{"me+tag@example.com", "a/b=c;d e%", "欢迎"} {
		var jar Jar
		jar.Set("k", v)
		back := Parse(jar.String() + ";")
		if got, _ := back.Get("k"); got != v {
			t.Fatalf("expected %q after round trip, got %q", v, got)
		}
	}
}
