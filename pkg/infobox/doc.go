// Package infobox extracts the label/value rows of the summary table
// ("infobox") found at the top of most Wikipedia articles.
package infobox
