package pointerdnd

import "testing"

func TestRegistryPreservesInsertionOrder(t *testing.T) {
	var rs registries
	a, b, c := NewContainer("a"), NewContainer("b"), NewContainer("c")
	rs.connect(KindTarget, "t1", a, PreviewOptions{})
	rs.connect(KindTarget, "t2", b, PreviewOptions{})
	rs.connect(KindTarget, "t1", c, PreviewOptions{})

	reg := rs.of(KindTarget)
	if reg.len() != 2 {
		t.Fatalf("len = %d, want 2", reg.len())
	}
	if reg.entries[0].id != "t1" || reg.entries[1].id != "t2" {
		t.Errorf("order = [%s %s], want [t1 t2]", reg.entries[0].id, reg.entries[1].id)
	}
	if reg.node("t1") != c {
		t.Error("reconnect should overwrite the node in place")
	}
}

func TestRegistryKindsAreSeparate(t *testing.T) {
	var rs registries
	n := NewContainer("n")
	rs.connect(KindSource, "x", n, PreviewOptions{})
	if rs.of(KindTarget).node("x") != nil || rs.of(KindPreview).node("x") != nil {
		t.Error("source id leaked into another registry")
	}
}

func TestRegistryDisposer(t *testing.T) {
	var rs registries
	dispose := rs.connect(KindSource, "s", NewContainer("n"), PreviewOptions{})
	rs.connect(KindSource, "other", NewContainer("m"), PreviewOptions{})

	dispose()
	dispose()
	reg := rs.of(KindSource)
	if _, ok := reg.get("s"); ok {
		t.Error("s should be removed")
	}
	if reg.len() != 1 || reg.node("other") == nil {
		t.Error("other should remain")
	}
}

func TestRegistryStaleDisposerKeepsNewerEntry(t *testing.T) {
	var rs registries
	old := rs.connect(KindSource, "s", NewContainer("old"), PreviewOptions{})
	newer := NewContainer("new")
	rs.connect(KindSource, "s", newer, PreviewOptions{})

	old()
	if got := rs.of(KindSource).node("s"); got != newer {
		t.Errorf("node = %v, want new", nodeName(got))
	}
}

func TestRegistryPreviewOptions(t *testing.T) {
	var rs registries
	opts := PreviewOptions{OffsetX: 4, OffsetY: -2}
	rs.connect(KindPreview, "s", NewContainer("p"), opts)
	e, ok := rs.of(KindPreview).get("s")
	if !ok || e.options != opts {
		t.Errorf("options = %+v, %v; want %+v", e.options, ok, opts)
	}
}

func TestRegistryRemoveReindexes(t *testing.T) {
	var rs registries
	d1 := rs.connect(KindTarget, "a", NewContainer("a"), PreviewOptions{})
	rs.connect(KindTarget, "b", NewContainer("b"), PreviewOptions{})
	rs.connect(KindTarget, "c", NewContainer("c"), PreviewOptions{})
	d1()
	if got := rs.of(KindTarget).node("c"); got == nil || got.Name != "c" {
		t.Errorf("node(c) = %v, want c", nodeName(got))
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{KindSource, "source"},
		{KindPreview, "preview"},
		{KindTarget, "target"},
		{Kind(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}
