// Package cashflow tracks a two-currency, two-source business cashflow
// and reconciles sales forecasts against what actually arrived.
//
// The core functionalities include:
//   - Ledger Management: Recording income and expense transactions in
//     ILS and USD across the bank account and the Payoneer account, in
//     an order-preserving collection where the positional index is the
//     only row identity.
//   - Aggregation: Net balances per source in their native currencies,
//     an overall ILS total at a fixed configured conversion rate, and
//     monthly, category and daily breakdowns.
//   - Forecasting: Projecting sales income per SKU, discounted by the
//     historically observed realization rate of that SKU (approved
//     over forecast), with an explicit fallback for SKUs without
//     history.
//   - Reconciliation: A forecast either settles to approved or
//     rejected; the settled amount replaces the prediction and the
//     original expectation is kept in an audit note.
//   - Data Persistence: Full-collection load and save against a Google
//     Sheets worksheet or a local CSV file, with a coercing row codec
//     that never rejects messy historical data.
//
// This package serves as the foundational logic for the `cfl`
// command-line tool.
package cashflow
