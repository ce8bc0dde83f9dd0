package features

import (
	"regexp"
	"strings"

	"discern/internal/corpus"
)

var (
	trailingMeta = regexp.MustCompile(`(\.|<P>|,)*$`)
	leadingQuote = regexp.MustCompile(`^"`)
)

// cleanEDUText strips segmentation metadata from EDU text.
func cleanEDUText(text string) string {
	text = trailingMeta.ReplaceAllString(text, "")
	text = leadingQuote.ReplaceAllString(text, "")
	return text
}

// normalizeWord returns a slightly normalised version of a corpus word.
func normalizeWord(word string) string {
	return strings.ToLower(word)
}

// eduTokens splits an EDU's cleaned text into normalised tokens.
func eduTokens(edu corpus.EDU) []string {
	fields := strings.Fields(cleanEDUText(edu.Text))
	tokens := make([]string, len(fields))
	for i, f := range fields {
		tokens[i] = normalizeWord(f)
	}
	return tokens
}

// SingleFeatures are the features computed for each EDU on its own.
var SingleFeatures = []SingleFeature{
	{
		Key: Key{Name: "word_first", Help: "first word in the EDU (normalised)", Kind: Discrete},
		Fn: func(_ *corpus.Document, edu corpus.EDU) Value {
			return Value{Key: Key{Name: "word_first", Kind: Discrete}, Text: firstToken(eduTokens(edu))}
		},
	},
	{
		Key: Key{Name: "word_last", Help: "last word in the EDU (normalised)", Kind: Discrete},
		Fn: func(_ *corpus.Document, edu corpus.EDU) Value {
			return Value{Key: Key{Name: "word_last", Kind: Discrete}, Text: lastToken(eduTokens(edu))}
		},
	},
	{
		Key: Key{Name: "num_tokens", Help: "number of tokens in the EDU text", Kind: Continuous},
		Fn: func(_ *corpus.Document, edu corpus.EDU) Value {
			return Value{Key: Key{Name: "num_tokens", Kind: Continuous}, Num: float64(len(eduTokens(edu)))}
		},
	},
}

// MetaFeatures identify an EDU rather than describe it; they stay out of
// learning vectors and appear only in inspection output.
var MetaFeatures = []SingleFeature{
	{
		Key: Key{Name: "id", Help: "unique identifier for the EDU", Kind: Discrete},
		Fn: func(_ *corpus.Document, edu corpus.EDU) Value {
			return Value{Key: Key{Name: "id", Kind: Discrete}, Text: edu.Identifier()}
		},
	},
	{
		Key: Key{Name: "start", Help: "text span start", Kind: Continuous},
		Fn: func(_ *corpus.Document, edu corpus.EDU) Value {
			return Value{Key: Key{Name: "start", Kind: Continuous}, Num: float64(edu.Start)}
		},
	},
	{
		Key: Key{Name: "end", Help: "text span end", Kind: Continuous},
		Fn: func(_ *corpus.Document, edu corpus.EDU) Value {
			return Value{Key: Key{Name: "end", Kind: Continuous}, Num: float64(edu.End)}
		},
	},
}

func firstToken(ts []string) string {
	if len(ts) == 0 {
		return ""
	}
	return ts[0]
}

func lastToken(ts []string) string {
	if len(ts) == 0 {
		return ""
	}
	return ts[len(ts)-1]
}
