package scoring

import (
	"strings"
)

// ReadabilityPolicy selects which readability formula to apply. Two policies
// exist historically and both are kept as explicit options.
type ReadabilityPolicy string

const (
	// PolicyWordCount is the default lenient policy: a length-based proxy
	// that scores word count against a 500-word target.
	PolicyWordCount ReadabilityPolicy = "wordcount"

	// PolicyFlesch computes a Flesch-Reading-Ease style score from
	// sentence, word and syllable counts.
	PolicyFlesch ReadabilityPolicy = "flesch"
)

// readabilityTargetWords is the word count that earns a full score under
// PolicyWordCount.
const readabilityTargetWords = 500

// ParseReadabilityPolicy maps a config string onto a policy, defaulting to
// PolicyWordCount for unknown or empty values.
func ParseReadabilityPolicy(s string) ReadabilityPolicy {
	if ReadabilityPolicy(strings.ToLower(strings.TrimSpace(s))) == PolicyFlesch {
		return PolicyFlesch
	}
	return PolicyWordCount
}

// Readability scores the flattened resume text under the given policy.
func Readability(text string, policy ReadabilityPolicy) float64 {
	if policy == PolicyFlesch {
		return fleschScore(text)
	}
	return wordCountScore(text)
}

func wordCountScore(text string) float64 {
	words := len(strings.Fields(text))
	return clamp(float64(words) / readabilityTargetWords * 100)
}

// fleschScore computes 206.835 - 1.015*(words/sentences) - 84.6*(syllables/words),
// clamped to [0,100]. Empty text scores 0.
func fleschScore(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}

	sentences := countSentences(text)
	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	score := 206.835 -
		1.015*(float64(len(words))/float64(sentences)) -
		84.6*(float64(syllables)/float64(len(words)))
	return clamp(score)
}

// countSentences counts terminator-delimited sentences, with a minimum of 1
// so flattened text without punctuation still scores.
func countSentences(text string) int {
	count := 0
	inSentence := false
	for _, r := range text {
		switch r {
		case '.', '!', '?':
			if inSentence {
				count++
				inSentence = false
			}
		default:
			if !strings.ContainsRune(" \t\n", r) {
				inSentence = true
			}
		}
	}
	if inSentence {
		count++
	}
	if count == 0 {
		return 1
	}
	return count
}

// countSyllables estimates syllables by counting vowel groups, with a
// minimum of 1 per word.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}
	// Trailing silent e.
	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count == 0 {
		return 1
	}
	return count
}
