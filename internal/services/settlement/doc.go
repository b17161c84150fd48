/*
Package settlement implements the print-request settlement engine: price
the job, check funds, debit the wallet, then record the printing request
and its Print Payment ledger entry in one atomic unit of work.

The balance check and debit run under a per-wallet row lock, so two
concurrent jobs against the same wallet serialize and can never overdraw
it. Transient database conflicts are retried a bounded number of times
before the failure is surfaced.
*/
package settlement
