// Package timezone pins every "today" in the service to the hotel's clock.
//
// The zone comes from APP_TIMEZONE and is loaded on first use. Room status,
// rollover and receipts all derive the stay date from Now, so a server
// running in UTC still flips the day at local midnight.
package timezone
