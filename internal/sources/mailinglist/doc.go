// Package mailinglist extracts scl files quoted in the Yahoo tuning
// groups archive (YahooTuningGroupsUltimateBackup). Email bodies are
// decoded from quoted-printable and HTML-escaped text, candidate scale
// fragments are found by growing a parse window line by line, and the
// survivors are validated, deduplicated across lists, and written with
// an archive-link provenance block.
package mailinglist
