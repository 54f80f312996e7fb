package assets

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
)

func TestLoadBundle_AppendsValidBundle(t *testing.T) {
	log := zerolog.Nop()
	m := New(fakeFrontend{}, &log)
	b := newFakeBundle("base")

	if !m.LoadBundle(b, 0) {
		t.Fatal("valid bundle rejected")
	}
	if m.BundleCount() != 1 {
		t.Fatalf("count=%d", m.BundleCount())
	}
	if b.inits != 1 || b.reloads != 1 {
		t.Fatalf("inits=%d reloads=%d, want 1/1", b.inits, b.reloads)
	}
	if b.logger == nil {
		t.Fatal("logger not bound into bundle")
	}
}

func TestLoadBundle_RejectsInvalidBundle(t *testing.T) {
	log := zerolog.Nop()
	m := New(fakeFrontend{}, &log)
	b := newFakeBundle("broken")
	b.valid = false

	if m.LoadBundle(b, 0) {
		t.Fatal("invalid bundle accepted")
	}
	if m.BundleCount() != 0 {
		t.Fatalf("collection size changed on rejection: %d", m.BundleCount())
	}
}

func TestLoadBundle_PriorityIsLoadOrder(t *testing.T) {
	// The priority argument is a placeholder; chain order is load order.
	b1 := newFakeBundle("first")
	b2 := newFakeBundle("second")
	log := zerolog.Nop()
	m := New(fakeFrontend{}, &log)
	m.LoadBundle(b1, 99)
	m.LoadBundle(b2, 0)

	st := m.Status()
	if st.Bundles[0].ID != "first" || st.Bundles[1].ID != "second" {
		t.Fatalf("order not insertion order: %+v", st.Bundles)
	}
}

func TestDeleteBundle_RemovesAndCloses(t *testing.T) {
	b1 := newFakeBundle("b1")
	b2 := newFakeBundle("b2")
	m := newTestManager(t, b1, b2)

	if m.DeleteBundle(b1) {
		t.Fatal("DeleteBundle must report false")
	}
	if m.BundleCount() != 1 {
		t.Fatalf("count=%d", m.BundleCount())
	}
	if !b1.closed {
		t.Fatal("deleted bundle not closed")
	}
	if b2.closed {
		t.Fatal("surviving bundle closed")
	}
}

func TestUnloadAll_SweepsTombstonesOnly(t *testing.T) {
	b1 := newFakeBundle("b1")
	b2 := newFakeBundle("b2")
	b3 := newFakeBundle("b3")
	m := newTestManager(t, b1, b2, b3)

	b2.active = false
	if m.UnloadAll() {
		t.Fatal("sweep over non-empty chain must report more pending")
	}
	st := m.Status()
	if len(st.Bundles) != 2 || st.Bundles[0].ID != "b1" || st.Bundles[1].ID != "b3" {
		t.Fatalf("unexpected survivors: %+v", st.Bundles)
	}
	if !b2.closed {
		t.Fatal("swept bundle not closed")
	}
	if b1.closed || b3.closed {
		t.Fatal("live bundle closed by sweep")
	}

	// A second sweep over the now-clean chain still reports more pending.
	if m.UnloadAll() {
		t.Fatal("sweep over non-empty chain must report more pending")
	}
	if m.BundleCount() != 2 {
		t.Fatalf("count=%d", m.BundleCount())
	}
}

func TestUnloadAll_EmptyChainIsDone(t *testing.T) {
	log := zerolog.Nop()
	m := New(fakeFrontend{}, &log)
	if !m.UnloadAll() {
		t.Fatal("empty chain must report done")
	}
}

func TestUnloadAll_DrainsToEmptyThenDone(t *testing.T) {
	b := newFakeBundle("b")
	m := newTestManager(t, b)
	b.active = false

	if m.UnloadAll() {
		t.Fatal("sweep that empties the chain still reports more pending")
	}
	if !m.UnloadAll() {
		t.Fatal("chain empty on entry must report done")
	}
}

func TestReloadBundles(t *testing.T) {
	log := zerolog.Nop()
	m := New(fakeFrontend{}, &log)
	if m.ReloadBundles() {
		t.Fatal("empty chain reported a reload")
	}

	b1 := newFakeBundle("b1")
	b2 := newFakeBundle("b2")
	m.LoadBundle(b1, 0)
	m.LoadBundle(b2, 0)
	r1, r2 := b1.reloads, b2.reloads
	if !m.ReloadBundles() {
		t.Fatal("non-empty chain reported no reload")
	}
	if b1.reloads != r1+1 || b2.reloads != r2+1 {
		t.Fatalf("reload counts %d/%d, want %d/%d", b1.reloads, b2.reloads, r1+1, r2+1)
	}
}

func TestActivate_RequiresBothReferences(t *testing.T) {
	m := New(nil, nil)
	if m.Activated() {
		t.Fatal("activated without references")
	}

	log := zerolog.Nop()
	m.Activate(fakeFrontend{}, &log)
	if !m.Activated() {
		t.Fatal("not activated with both references")
	}

	m.Activate(fakeFrontend{}, nil)
	if m.Activated() {
		t.Fatal("activated without a logger")
	}

	m.Activate(nil, &log)
	if m.Activated() {
		t.Fatal("activated without a frontend")
	}
}

func TestActivate_ReloadsBundles(t *testing.T) {
	b := newFakeBundle("b")
	m := newTestManager(t, b)
	before := b.reloads
	log := zerolog.Nop()
	m.Activate(fakeFrontend{}, &log)
	if b.reloads != before+1 {
		t.Fatalf("activate did not trigger a reload pass: %d", b.reloads)
	}
}

func TestClose_ClosesBundles(t *testing.T) {
	b1 := newFakeBundle("b1")
	b2 := newFakeBundle("b2")
	m := newTestManager(t, b1, b2)
	if err := m.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !b1.closed || !b2.closed {
		t.Fatal("bundles not closed")
	}
	if m.BundleCount() != 0 {
		t.Fatalf("count=%d after close", m.BundleCount())
	}
}

func TestClose_ResetsLiveGauge(t *testing.T) {
	m := newTestManager(t, newFakeBundle("b1"), newFakeBundle("b2"))
	if got := testutil.ToFloat64(bundlesLive); got != 2 {
		t.Fatalf("bundles_live=%v before close, want 2", got)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if got := testutil.ToFloat64(bundlesLive); got != 0 {
		t.Fatalf("bundles_live=%v after close, want 0", got)
	}
}
