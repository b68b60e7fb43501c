package testkit

import "testing"

func TestMustPanic(t *testing.T) {
	MustPanic(t, func() { panic("boom") })
}

func TestMustNotPanic(t *testing.T) {
	MustNotPanic(t, func() {})
}

func TestMustContain(t *testing.T) {
	MustContain(t, "level curve band", "curve")
}
