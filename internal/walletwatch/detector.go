package walletwatch

// hasChanged reports whether cur differs from prev. Balances are compared
// numerically so "1.0" and "1" are equal; any nonzero delta counts.
func hasChanged(prev, cur Snapshot) bool {
	return !prev.Balance.Equal(cur.Balance) || prev.HasContractCode != cur.HasContractCode
}
