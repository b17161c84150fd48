/*
Package wallet implements the credit side of the prepaid wallet: top-ups
and refunds, plus balance and ledger reads.

Every balance mutation happens inside one database transaction together
with exactly one ledger entry, so the ledger replays to the balance at
all times. Debits belong to the settlement package; this package never
decreases a balance.

Usage:

	svc := wallet.NewService(repo, txRepo, refs, cacheSvc, metrics)

	// Credit a wallet
	entry, err := svc.TopUp(ctx, studentID, decimal.NewFromFloat(20))

	// Refund against a wallet
	entry, err = svc.Refund(ctx, walletID, decimal.NewFromFloat(10))

	// Read projections
	walletID, balance, err := svc.GetBalance(ctx, studentID)
	entries, err := svc.ListTransactionHistory(ctx, studentID, 20, 0)
*/
package wallet
