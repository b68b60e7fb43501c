package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestWrapAndUnwrap(t *testing.T) {
	root := stderrs.New("connection refused")
	err := Wrapf(root, ErrorCodeFeedUnavailable, "feed fetch failed")

	if !stderrs.Is(err, root) {
		t.Fatalf("wrapped cause lost")
	}
	if got := Root(err); got != root {
		t.Fatalf("Root = %v, want the original cause", got)
	}
	if err.Error() != "feed fetch failed: connection refused" {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(MalformedSnapshotf("bad file")); got != ErrorCodeMalformedSnapshot {
		t.Fatalf("CodeOf = %v", got)
	}
	if got := CodeOf(stderrs.New("plain")); got != ErrorCodeUnknown {
		t.Fatalf("CodeOf plain error = %v, want unknown", got)
	}
	if !IsCode(InvalidScoref("nan"), ErrorCodeInvalidScore) {
		t.Fatalf("IsCode mismatch")
	}
	// code survives stdlib wrapping
	wrapped := stderrs.Join(stderrs.New("ctx"), FeedUnavailablef("down"))
	if !IsCode(wrapped, ErrorCodeFeedUnavailable) {
		t.Fatalf("code lost through join")
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NotFoundf("gone"), http.StatusNotFound},
		{InvalidArgf("bad"), http.StatusUnprocessableEntity},
		{JSONErrf("parse"), http.StatusBadRequest},
		{New(ErrorCodeValidation, "field"), http.StatusBadRequest},
		{Newf(ErrorCodeTooManyRequests, "slow down"), http.StatusTooManyRequests},
		{FeedUnavailablef("down"), http.StatusServiceUnavailable},
		{MalformedSnapshotf("bad"), http.StatusInternalServerError},
		{InvalidScoref("nan"), http.StatusInternalServerError},
		{Internalf("boom"), http.StatusInternalServerError},
		{stderrs.New("plain"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatus(c.err); got != c.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestWithField(t *testing.T) {
	base := New(ErrorCodeValidation, "required")
	withField := WithField(base, "date")

	e, ok := As(withField)
	if !ok || e.Field() != "date" {
		t.Fatalf("WithField did not attach: %+v", e)
	}
	// original untouched
	orig, _ := As(base)
	if orig.Field() != "" {
		t.Fatalf("WithField mutated the original")
	}
	// non-ours passes through
	plain := stderrs.New("plain")
	if WithField(plain, "x") != plain {
		t.Fatalf("WithField must pass through foreign errors")
	}
}

func TestWireFrom(t *testing.T) {
	w := WireFrom(WithField(New(ErrorCodeValidation, "required"), "count"))
	if w.Code != ErrorCodeValidation || w.Message != "required" || w.Field != "count" {
		t.Fatalf("wire = %+v", w)
	}
	pw := WireFrom(stderrs.New("plain"))
	if pw.Code != ErrorCodeUnknown || pw.Message != "plain" {
		t.Fatalf("plain wire = %+v", pw)
	}
	if z := WireFrom(nil); z != (Wire{}) {
		t.Fatalf("nil wire = %+v", z)
	}
}

func TestHTTPBundle(t *testing.T) {
	status, wire := HTTP(NotFoundf("no such month"))
	if status != http.StatusNotFound || wire.Code != ErrorCodeNotFound {
		t.Fatalf("HTTP() = %d %+v", status, wire)
	}
	status, wire = HTTP(nil)
	if status != http.StatusOK || wire != (Wire{}) {
		t.Fatalf("HTTP(nil) = %d %+v", status, wire)
	}
}
