package collection

import (
	"testing"
)

type row struct {
	Status string
	Amount float64
}

func TestGroupBy(t *testing.T) {
	rows := []row{
		{"pending", 10},
		{"completed", 20},
		{"pending", 30},
	}

	grouped := GroupBy(rows, func(r row) string { return r.Status })
	if len(grouped) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(grouped))
	}
	if len(grouped["pending"]) != 2 {
		t.Fatalf("expected 2 pending rows, got %d", len(grouped["pending"]))
	}
	if len(grouped["completed"]) != 1 {
		t.Fatalf("expected 1 completed row, got %d", len(grouped["completed"]))
	}
}

func TestSum(t *testing.T) {
	rows := []row{{"a", 1.5}, {"b", 2.5}, {"c", 3}}
	if got := Sum(rows, func(r row) float64 { return r.Amount }); got != 7 {
		t.Fatalf("Sum = %v", got)
	}
	if got := Sum(nil, func(r row) float64 { return r.Amount }); got != 0 {
		t.Fatalf("Sum(nil) = %v", got)
	}
}

func TestMapFilterFirst(t *testing.T) {
	nums := []int{1, 2, 3, 4}

	doubled := Map(nums, func(n int) int { return n * 2 })
	if len(doubled) != 4 || doubled[3] != 8 {
		t.Fatalf("Map = %v", doubled)
	}

	evens := Filter(nums, func(n int) bool { return n%2 == 0 })
	if len(evens) != 2 {
		t.Fatalf("Filter = %v", evens)
	}

	first, ok := First(nums, func(n int) bool { return n > 2 })
	if !ok || first != 3 {
		t.Fatalf("First = %v, %v", first, ok)
	}
	if _, ok := First(nums, func(n int) bool { return n > 10 }); ok {
		t.Fatal("First matched nothing but reported ok")
	}
}

func TestKeyBy(t *testing.T) {
	rows := []row{{"a", 1}, {"b", 2}, {"a", 3}}
	keyed := KeyBy(rows, func(r row) string { return r.Status })
	if len(keyed) != 2 {
		t.Fatalf("KeyBy = %v", keyed)
	}
	if keyed["a"].Amount != 3 {
		t.Fatalf("last value should win, got %v", keyed["a"])
	}
}

func TestReduceAndSortBy(t *testing.T) {
	nums := []int{3, 1, 2}

	product := Reduce(nums, 1, func(acc, n int) int { return acc * n })
	if product != 6 {
		t.Fatalf("Reduce = %d", product)
	}

	SortBy(nums, func(a, b int) bool { return a < b })
	if nums[0] != 1 || nums[2] != 3 {
		t.Fatalf("SortBy = %v", nums)
	}
}
