package internal

import "testing"

func TestEnv(t *testing.T) {
	global := NewEnv(nil)
	global.Set("a", eveNumber(1))
	global.Set("b", eveNumber(2))

	local := NewEnv(global)
	local.Set("a", eveString("shadow"))

	if v, _ := local.Get("a"); Inspect(v) != "shadow" {
		t.Errorf("local binding should shadow, found %s", Inspect(v))
	}
	if v, _ := global.Get("a"); Inspect(v) != "1" {
		t.Errorf("global binding should be untouched, found %s", Inspect(v))
	}
	if v, ok := local.Get("b"); !ok || Inspect(v) != "2" {
		t.Errorf("lookup should reach the enclosing scope")
	}
	if _, ok := local.Get("c"); ok {
		t.Errorf("c should not be bound")
	}

	if !local.assign("b", eveNumber(3)) {
		t.Fatal("assign should find b in the enclosing scope")
	}
	if v, _ := global.Get("b"); Inspect(v) != "3" {
		t.Errorf("assign should write to the owning scope, found %s", Inspect(v))
	}
	if _, ok := local.values["b"]; ok {
		t.Errorf("assign should not create a local binding")
	}
	if local.assign("c", null) {
		t.Errorf("assign to an unbound name should fail")
	}
}
