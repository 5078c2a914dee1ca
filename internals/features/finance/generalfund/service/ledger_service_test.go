package service

import "testing"

func TestAllocationAmount(t *testing.T) {
	cases := []struct {
		name                         string
		balance, target, current     int64
		want                         int64
	}{
		{"dompet cukup sebagian", 300000, 1000000, 800000, 200000},
		{"dompet lebih dari kebutuhan", 500000, 1000000, 900000, 100000},
		{"target sudah penuh", 500000, 1000000, 1000000, 0},
		{"target lewat penuh", 500000, 1000000, 1500000, 0},
		{"dompet kosong", 0, 1000000, 0, 0},
		{"dompet negatif", -100, 1000000, 0, 0},
		{"kebutuhan persis sama dengan saldo", 200000, 1000000, 800000, 200000},
	}
	for _, c := range cases {
		if got := AllocationAmount(c.balance, c.target, c.current); got != c.want {
			t.Errorf("%s: AllocationAmount(%d,%d,%d) = %d, want %d",
				c.name, c.balance, c.target, c.current, got, c.want)
		}
	}
}
