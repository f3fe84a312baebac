/*
Package ledger implements the wallet ledger: deposits, withdrawals,
transfers between wallets, reconciliation adjustments and the wallet
lifecycle around them.

Every mutation runs inside a database transaction, behind a per-wallet
guard, and appends to the transaction log, so that for any wallet

	balance == initialBalance + sum of its signed transactions

holds after every operation. Transfers write two linked entries
(transfer_out on the source, transfer_in on the destination) sharing a
correlation ID; both commit together or neither does.

Usage:

	svc := ledger.NewService(walletRepo, txRepo, cache, ledger.Config{}, nil)

	w, err := svc.CreateWallet(ctx, ledger.CreateWalletRequest{
	    OwnerID: ownerID,
	    Name:    "Ahorros",
	})

	res, err := svc.Deposit(ctx, ledger.DepositRequest{
	    WalletID: w.ID,
	    Amount:   decimal.NewFromInt(1000),
	    Concept:  "Salario",
	    Date:     time.Now(),
	})

Errors are *errors.DomainError values with stable codes; conflicts
(CONFLICT) are safe to retry, the rest are terminal for the call.
*/
package ledger
