// Package founder looks up the founders of companies on Wikipedia.
//
// A lookup searches for the company name, fetches the page of the most
// relevant hit and reads the rows of its infobox whose header mentions
// "Founder". Expected failures (no hit, no infobox, ...) are reported with
// fixed human readable messages, see Describe.
package founder
