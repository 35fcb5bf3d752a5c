package ring

import (
	"math/rand"
	"testing"
)

func TestPushPopNoWrap(t *testing.T) {
	b := New[int](10)
	for i := 1; i <= 4; i++ {
		if !b.Push(i) {
			t.Fatalf("Push(%d) failed on non-full buffer", i)
		}
		if b.end != b.start+i {
			t.Errorf("end = %d, expected %d", b.end, b.start+i)
		}
	}

	for want := 1; want <= 4; want++ {
		got, ok := b.Pop()
		if !ok || got != want {
			t.Errorf("Pop() = (%d, %v), expected (%d, true)", got, ok, want)
		}
	}

	if _, ok := b.Pop(); ok {
		t.Error("Pop() on empty buffer should report no value")
	}
}

func TestPushPopWithWrap(t *testing.T) {
	b := New[int](3)
	for i := 1; i <= 3; i++ {
		if !b.Push(i) {
			t.Fatalf("Push(%d) failed", i)
		}
	}
	if b.Push(4) {
		t.Error("Push() into full buffer should fail")
	}

	// Rotate the window so the storage wraps.
	b.Pop()
	b.Push(4)
	b.Pop()
	b.Push(5)

	for _, want := range []int{3, 4, 5} {
		got, ok := b.Pop()
		if !ok || got != want {
			t.Errorf("Pop() = (%d, %v), expected (%d, true)", got, ok, want)
		}
	}
	if _, ok := b.Pop(); ok {
		t.Error("buffer should be empty")
	}
}

func TestFullPushLeavesStateUnchanged(t *testing.T) {
	b := New[int](2)
	b.Push(7)
	b.Push(8)
	start, end := b.start, b.end

	if b.Push(9) {
		t.Fatal("Push() into full buffer should fail")
	}
	if b.start != start || b.end != end || b.Len() != 2 {
		t.Errorf("full Push() mutated state: start=%d end=%d len=%d", b.start, b.end, b.Len())
	}
	if front, _ := b.PeekFront(); front != 7 {
		t.Errorf("PeekFront() = %d, expected 7", front)
	}
	if back, _ := b.PeekBack(); back != 8 {
		t.Errorf("PeekBack() = %d, expected 8", back)
	}
}

func TestCap(t *testing.T) {
	if c := New[int](4).Cap(); c != 4 {
		t.Errorf("Cap() = %d, expected 4", c)
	}
	if c := New[string](40).Cap(); c != 40 {
		t.Errorf("Cap() = %d, expected 40", c)
	}
	if c := New[[2]int8](256).Cap(); c != 256 {
		t.Errorf("Cap() = %d, expected 256", c)
	}
}

func TestNewRejectsZeroCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New(0) should panic")
		}
	}()
	New[int](0)
}

func TestLen(t *testing.T) {
	b := New[int](3)
	steps := []struct {
		op       string
		expected int
	}{
		{"push", 1},
		{"push", 2},
		{"push", 3},
		{"push", 3}, // full, no-op
		{"pop", 2},
		{"pop", 1},
		{"pop", 0},
		{"pop", 0}, // empty, no-op
	}

	for i, s := range steps {
		if s.op == "push" {
			b.Push(i)
		} else {
			b.Pop()
		}
		if b.Len() != s.expected {
			t.Errorf("step %d (%s): Len() = %d, expected %d", i, s.op, b.Len(), s.expected)
		}
	}
}

func TestIsFullIsEmpty(t *testing.T) {
	b := New[int](3)
	if !b.IsEmpty() || b.IsFull() {
		t.Fatal("new buffer should be empty and not full")
	}

	b.Push(1)
	b.Push(2)
	b.Push(3)
	if !b.IsFull() || b.IsEmpty() {
		t.Error("buffer with 3/3 values should be full")
	}

	b.Pop()
	if b.IsFull() {
		t.Error("buffer should not be full after Pop()")
	}

	b.Pop()
	b.Pop()
	if !b.IsEmpty() {
		t.Error("buffer should be empty after popping everything")
	}
}

func TestClear(t *testing.T) {
	b := New[int](3)
	b.Push(1)
	b.Push(2)
	b.Push(3)
	b.Clear()

	if !b.IsEmpty() || b.Len() != 0 {
		t.Errorf("after Clear(): IsEmpty() = %v, Len() = %d", b.IsEmpty(), b.Len())
	}
	if !b.Push(4) {
		t.Error("Push() after Clear() should succeed")
	}
}

func TestGetAndPeek(t *testing.T) {
	b := New[int](3)
	if _, ok := b.PeekBack(); ok {
		t.Error("PeekBack() on empty buffer should report no value")
	}
	if _, ok := b.PeekFront(); ok {
		t.Error("PeekFront() on empty buffer should report no value")
	}

	b.Push(1)
	b.Push(2)
	b.Push(3)
	b.Pop()
	b.Push(4) // storage now wraps: [4 2 3], start=1

	for i, want := range []int{2, 3, 4} {
		got, ok := b.Get(i)
		if !ok || got != want {
			t.Errorf("Get(%d) = (%d, %v), expected (%d, true)", i, got, ok, want)
		}
	}
	if _, ok := b.Get(3); ok {
		t.Error("Get() past Len() should report no value")
	}
	if _, ok := b.Get(-1); ok {
		t.Error("Get(-1) should report no value")
	}
	if v, _ := b.PeekFront(); v != 2 {
		t.Errorf("PeekFront() = %d, expected 2", v)
	}
	if v, _ := b.PeekBack(); v != 4 {
		t.Errorf("PeekBack() = %d, expected 4", v)
	}
}

func TestAllOrderAndRestart(t *testing.T) {
	b := New[int](3)
	b.Push(1)
	b.Push(2)
	b.Push(3)
	b.Pop()
	b.Push(4)

	for pass := 0; pass < 2; pass++ {
		var got []int
		for v := range b.All() {
			got = append(got, v)
		}
		if len(got) != 3 || got[0] != 2 || got[1] != 3 || got[2] != 4 {
			t.Errorf("pass %d: All() = %v, expected [2 3 4]", pass, got)
		}
	}

	// Early break stops the sequence.
	count := 0
	for range b.All() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("break after first value yielded %d values", count)
	}
}

func TestContains(t *testing.T) {
	b := New[int](4)
	b.Push(5)
	b.Push(6)

	if !b.Contains(func(v int) bool { return v == 6 }) {
		t.Error("Contains(6) should be true")
	}
	if b.Contains(func(v int) bool { return v == 7 }) {
		t.Error("Contains(7) should be false")
	}
}

// Random push/pop sequences against a slice model.
func TestRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const capacity = 5
	b := New[int](capacity)
	var model []int

	for i := 0; i < 2000; i++ {
		if rng.Intn(2) == 0 {
			ok := b.Push(i)
			if ok != (len(model) < capacity) {
				t.Fatalf("op %d: Push() = %v with model len %d", i, ok, len(model))
			}
			if ok {
				model = append(model, i)
			}
		} else {
			v, ok := b.Pop()
			if ok != (len(model) > 0) {
				t.Fatalf("op %d: Pop() ok = %v with model len %d", i, ok, len(model))
			}
			if ok {
				if v != model[0] {
					t.Fatalf("op %d: Pop() = %d, expected %d", i, v, model[0])
				}
				model = model[1:]
			}
		}

		if b.Len() != len(model) || b.Len() > capacity {
			t.Fatalf("op %d: Len() = %d, model %d", i, b.Len(), len(model))
		}
		if b.IsEmpty() != (len(model) == 0) || b.IsFull() != (len(model) == capacity) {
			t.Fatalf("op %d: IsEmpty/IsFull disagree with model len %d", i, len(model))
		}

		j := 0
		for v := range b.All() {
			if v != model[j] {
				t.Fatalf("op %d: All()[%d] = %d, expected %d", i, j, v, model[j])
			}
			j++
		}
		if j != len(model) {
			t.Fatalf("op %d: All() yielded %d values, expected %d", i, j, len(model))
		}
	}
}
