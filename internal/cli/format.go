package cli

import "fmt"

// FormatDayKey formats a YYYYMMDD key as dd.mm.yyyy for display.
// Malformed keys come back unchanged.
func FormatDayKey(key string) string {
	if len(key) != 8 {
		return key
	}
	return key[6:] + "." + key[4:6] + "." + key[:4]
}

// FormatProgress formats a best streak against the success threshold:
// a plain day count once the threshold is reached, progress toward it
// otherwise.
func FormatProgress(best, threshold int) string {
	if threshold <= 0 || best >= threshold {
		return fmt.Sprintf("%d days", best)
	}
	return fmt.Sprintf("%d/%d (%d%%)", best, threshold, best*100/threshold)
}
