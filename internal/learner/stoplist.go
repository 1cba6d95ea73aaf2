package learner

// stopWords are common function and filler words that never count as
// learned vocabulary. Entries shorter than four characters are kept for
// completeness even though the token pattern already filters them.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "her": true,
	"was": true, "one": true, "our": true, "out": true, "his": true,
	"has": true, "had": true, "how": true, "who": true, "its": true,
	"that": true, "have": true, "this": true, "with": true, "they": true,
	"from": true, "what": true, "when": true, "were": true, "there": true,
	"their": true, "would": true, "been": true, "will": true, "more": true,
	"about": true, "which": true, "them": true, "then": true, "some": true,
	"could": true, "other": true, "than": true, "into": true, "very": true,
	"just": true, "also": true, "because": true, "over": true, "such": true,
	"only": true, "most": true, "after": true, "where": true, "these": true,
	"should": true, "being": true, "does": true, "doing": true, "each": true,
	"here": true, "like": true, "many": true, "much": true, "make": true,
	"made": true, "take": true, "want": true, "went": true, "your": true,
	"yours": true, "mine": true, "ours": true, "theirs": true, "every": true,
	"always": true, "never": true, "often": true, "sometimes": true,
	"really": true, "think": true, "know": true, "good": true, "well": true,
	"people": true, "thing": true, "things": true, "time": true, "today": true,
	"don't": true, "doesn't": true, "didn't": true, "isn't": true,
	"aren't": true, "wasn't": true, "can't": true, "won't": true,
}
