package normalizer

import "regexp"

// podVariantRe matches every POD/HD spelling the source notes use:
// "POD 3", "POD#3", "pod-3", "post-op day 3", "HD#5", "hospital day 5".
var podVariantRe = regexp.MustCompile(`(?i)\b(?:POD|post[- ]?op(?:erative)? day|HD|hospital day)\s*#?\s*(\d+)\b`)

// canonicalizePOD rewrites every POD/HD spelling to "POD#<n>". Hospital
// day (HD) notation is preserved as POD# per the Normalizer's single
// canonical output form; the Temporal Analyzer is responsible for
// deciding whether a given POD# resolves against a surgery anchor.
func canonicalizePOD(text string) string {
	return podVariantRe.ReplaceAllString(text, "POD#$1")
}
