package skills

import (
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// The skills table stores the fixed-size array columns as comma separated
// text, with a trailing comma: "25,320,390,745,". Decoding must accept that
// trailing comma and shrug off garbage, rows predate this program.

func encodeInts(values [4]int) string {
	var sb strings.Builder
	for _, v := range values {
		sb.WriteString(strconv.Itoa(v))
		sb.WriteByte(',')
	}
	return sb.String()
}

func decodeInts(encoded string) [4]int {
	var values [4]int
	i := 0
	for _, token := range strings.Split(encoded, ",") {
		if token == "" {
			continue
		}
		if i >= len(values) {
			break
		}
		v, err := strconv.Atoi(token)
		if err != nil {
			log.Warnf("decode ints: bad token %q, using 0", token)
			v = 0
		}
		values[i] = v
		i++
	}
	return values
}

func encodeHashtags(hashtags [3]Hashtag) string {
	var sb strings.Builder
	for _, h := range hashtags {
		sb.WriteString(h.String())
		sb.WriteByte(',')
	}
	return sb.String()
}

func decodeHashtags(encoded string) [3]Hashtag {
	hashtags := [3]Hashtag{HashtagEmpty, HashtagEmpty, HashtagEmpty}
	i := 0
	for _, token := range strings.Split(encoded, ",") {
		if token == "" {
			continue
		}
		if i >= len(hashtags) {
			break
		}
		h, err := ParseHashtag(token)
		if err != nil {
			log.Warnf("decode hashtags: %s, using %s", err, HashtagEmpty)
			h = HashtagEmpty
		}
		hashtags[i] = h
		i++
	}
	return hashtags
}
