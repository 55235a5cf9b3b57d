package blinky

import (
	"testing"
)

func TestEmptyId(t *testing.T) {
	defer func() { _ = recover() }()
	// should panic with empty Id
	NewThing("", "foo", "bar")
	t.Errorf("did not panic")
}

func TestEmptyModel(t *testing.T) {
	defer func() { _ = recover() }()
	// should panic with empty Model
	NewThing("foo", "", "bar")
	t.Errorf("did not panic")
}

func TestEmptyName(t *testing.T) {
	defer func() { _ = recover() }()
	// should panic with empty Name
	NewThing("foo", "bar", "")
	t.Errorf("did not panic")
}

func TestValidId(t *testing.T) {
	for _, id := range []string{"a", "Z", "0", "_", "disco_01"} {
		if !ValidId(id) {
			t.Errorf("%q should be valid", id)
		}
	}
	for _, id := range []string{"", "disco-01", "a b", "ü"} {
		if ValidId(id) {
			t.Errorf("%q should not be valid", id)
		}
	}
}

func TestFlags(t *testing.T) {
	thing := NewThing("id", "model", "name")
	if thing.IsMetal() {
		t.Error("new thing is metal")
	}
	thing.SetFlag(ThingFlagMetal)
	if !thing.IsMetal() {
		t.Error("metal flag not set")
	}
	if thing.String() != "[Id: id, Model: model, Name: name]" {
		t.Error("bad String():", thing.String())
	}
}
