package loot

// moneyExactRange is the widest span drawn at full precision.
const moneyExactRange = 32700

// GenerateMoney rolls the gold of the loot in [minAmount, maxAmount] scaled
// by the money rate. maxAmount == 0 leaves the gold untouched.
//
// Spans of moneyExactRange and more are drawn on values shifted right by 8
// and shifted back, so the low 8 bits of the result are always zero.
func (l *Loot) GenerateMoney(minAmount, maxAmount uint32) {
	if maxAmount == 0 {
		return
	}

	rate := l.tables.Rates.DropMoney
	switch {
	case maxAmount <= minAmount:
		l.gold = uint32(float64(maxAmount) * rate)
	case maxAmount-minAmount < moneyExactRange:
		l.gold = uint32(float64(urand(l.tables.RNG, minAmount, maxAmount)) * rate)
	default:
		l.gold = uint32(float64(urand(l.tables.RNG, minAmount>>8, maxAmount>>8))*rate) << 8
	}
}
