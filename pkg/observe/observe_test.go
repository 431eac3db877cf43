package observe

import "testing"

func TestNotifier_NotifiesInOrder(t *testing.T) {
	var n Notifier
	var calls []int
	n.AddListener(func() { calls = append(calls, 1) })
	n.AddListener(func() { calls = append(calls, 2) })
	n.Notify()
	if len(calls) != 2 || calls[0] != 1 || calls[1] != 2 {
		t.Errorf("calls = %v, want [1 2]", calls)
	}
}

func TestNotifier_Unsubscribe(t *testing.T) {
	var n Notifier
	count := 0
	remove := n.AddListener(func() { count++ })
	n.Notify()
	remove()
	n.Notify()
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestNotifier_NilListener(t *testing.T) {
	var n Notifier
	remove := n.AddListener(nil)
	remove()
	n.Notify()
	if n.HasListeners() {
		t.Error("nil listener should not register")
	}
}

func TestValue_SetNotifiesOnChange(t *testing.T) {
	v := NewValue(0)
	var got []int
	v.AddListener(func(value int) { got = append(got, value) })
	v.Set(1)
	v.Set(2)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("got = %v, want [1 2]", got)
	}
	if v.Get() != 2 {
		t.Errorf("Get() = %d, want 2", v.Get())
	}
}

func TestValue_EqualSetIsNoOp(t *testing.T) {
	v := NewValue(5)
	count := 0
	v.AddListener(func(int) { count++ })
	v.Set(5)
	if count != 0 {
		t.Errorf("equal Set notified %d times, want 0", count)
	}
}

func TestValue_Unsubscribe(t *testing.T) {
	v := NewValue(0)
	count := 0
	remove := v.AddListener(func(int) { count++ })
	v.Set(1)
	remove()
	v.Set(2)
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}
