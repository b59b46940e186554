package key

import "testing"

func TestLookup(t *testing.T) {
	b, ok := Lookup("pgdown")
	if !ok || b.Display() != "pgup/pgdown" {
		t.Fatalf("unexpected binding %+v", b)
	}
	if b, _ := Lookup("down"); b.Hidden {
		t.Fatalf("lookup must prefer shown bindings")
	}
	if _, ok := Lookup("f13"); ok {
		t.Fatalf("f13 is not bound")
	}
}

func TestDefaultIsACopy(t *testing.T) {
	d := Default()
	d[0].Meaning = "changed"
	if Default()[0].Meaning == "changed" {
		t.Fatalf("Default must not expose the table")
	}
}
