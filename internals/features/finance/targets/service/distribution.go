package service

// DistributionResult adalah hasil perhitungan pembagian dana saat target
// ditutup.
type DistributionResult struct {
	FullyFunded      bool
	PerPerson        int64
	TotalDistributed int64
	Excess           int64
}

// ComputeDistribution hitung pembagian dana untuk penutupan target.
//
// Terpenuhi penuh (current >= target): per orang pakai alokasi dari
// settings (bukan turunan dari nominal), total distribusi = target_amount,
// sisanya jadi kelebihan yang disapu ke dompet bersama.
//
// Terpenuhi sebagian: dana yang ada dibagi rata (floor), tidak ada
// kelebihan.
func ComputeDistribution(targetAmount, currentAmount int64, graduateCount int, perPersonAllocation int64) DistributionResult {
	if currentAmount >= targetAmount {
		return DistributionResult{
			FullyFunded:      true,
			PerPerson:        perPersonAllocation,
			TotalDistributed: targetAmount,
			Excess:           currentAmount - targetAmount,
		}
	}

	var perPerson int64
	if graduateCount > 0 {
		perPerson = currentAmount / int64(graduateCount)
	}
	return DistributionResult{
		FullyFunded:      false,
		PerPerson:        perPerson,
		TotalDistributed: currentAmount,
		Excess:           0,
	}
}
