package emotion

// Emotion labels form a closed set. The order here is the tie-break order
// for dominant-emotion selection, so it is fixed.
const (
	Anxious      = "anxious"
	Sad          = "sad"
	Stressed     = "stressed"
	Confused     = "confused"
	Lonely       = "lonely"
	Happy        = "happy"
	Calm         = "calm"
	Angry        = "angry"
	Guilty       = "guilty"
	Proud        = "proud"
	Relieved     = "relieved"
	Grateful     = "grateful"
	Motivated    = "motivated"
	Excited      = "excited"
	Disappointed = "disappointed"
	Worried      = "worried"
	Tired        = "tired"
	Neutral      = "neutral"
)

// Labels lists every detectable emotion in scoring order.
var Labels = []string{
	Anxious, Sad, Stressed, Confused, Lonely, Happy, Calm, Angry, Guilty,
	Proud, Relieved, Grateful, Motivated, Excited, Disappointed, Worried,
	Tired,
}

// Concern categories, in the priority order used when building a context
// clause for the reply.
const (
	ConcernAcademic = "academic"
	ConcernSocial   = "social"
	ConcernSleep    = "sleep"
	ConcernFuture   = "future"
	ConcernFamily   = "family"
	ConcernHealth   = "health"
)

// ConcernPriority orders concern categories for context-clause selection.
var ConcernPriority = []string{
	ConcernAcademic, ConcernSocial, ConcernSleep, ConcernFuture,
	ConcernFamily, ConcernHealth,
}

var emotionKeywords = map[string][]string{
	Anxious:      {"anxious", "anxiety", "worried", "nervous", "panic", "fear", "afraid", "scared", "tense", "uneasy", "restless", "on edge", "apprehensive", "frightened", "terrified", "phobia", "dread", "foreboding", "jittery", "shaky", "sweating", "palpitations", "racing heart", "cant breathe", "hyperventilating"},
	Sad:          {"sad", "depressed", "depression", "unhappy", "miserable", "down", "blue", "gloomy", "heartbroken", "crying", "tears", "hopeless", "despair", "melancholy", "grief", "mourning", "devastated", "crushed", "empty", "numb", "worthless", "pathetic", "meaningless", "darkness", "void"},
	Stressed:     {"stressed", "stress", "overwhelmed", "pressure", "burnout", "exhausted", "tired", "fatigue", "drained", "worn out", "overworked", "burdened", "swamped", "drowning", "suffocating", "cant cope", "too much", "breaking point", "at my limit", "fed up", "had enough"},
	Confused:     {"confused", "confusion", "uncertain", "unsure", "lost", "clueless", "puzzled", "bewildered", "dont know", "unclear", "ambiguous", "mixed up", "disoriented", "perplexed", "baffled", "stumped", "dont understand", "making sense", "figure out"},
	Lonely:       {"lonely", "alone", "loneliness", "isolated", "no one", "nobody", "by myself", "empty", "solitary", "secluded", "withdrawn", "abandoned", "rejected", "unwanted", "invisible", "forgotten", "left out", "excluded", "misunderstood"},
	Happy:        {"happy", "happiness", "joy", "glad", "pleased", "delighted", "cheerful", "excited", "good", "great", "wonderful", "amazing", "fantastic", "awesome", "ecstatic", "euphoric", "elated", "jubilant", "thrilled", "overjoyed", "content", "satisfied"},
	Calm:         {"calm", "peaceful", "relaxed", "serene", "tranquil", "at ease", "comfortable", "content", "satisfied", "composed", "collected", "centered", "balanced", "grounded", "zen", "untroubled", "placid", "still", "quiet", "restful"},
	Angry:        {"angry", "anger", "mad", "furious", "irritated", "annoyed", "frustrated", "upset", "resentful", "rage", "outraged", "enraged", "infuriated", "livid", "irate", "incensed", "aggravated", "provoked", "hostile", "bitter"},
	Guilty:       {"guilty", "guilt", "regret", "ashamed", "embarrassed", "sorry", "my fault", "blame", "remorse", "bad", "wrong", "mistake", "failure", "let down", "disappointed", "should have", "could have"},
	Proud:        {"proud", "pride", "accomplished", "achievement", "success", "succeeded", "did it", "made it", "triumph", "victory", "won", "excelled", "mastered", "completed", "finished", "done well", "impressed"},
	Relieved:     {"relieved", "relief", "better", "glad its over", "weight lifted", "breathing again", "sigh of relief", "pressure off", "free", "unburdened", "restored", "recovered", "safe", "secure"},
	Grateful:     {"grateful", "gratitude", "thankful", "appreciate", "blessed", "lucky", "thank you", "fortunate", "privileged", "thankful for", "appreciation", "recognition", "acknowledgment"},
	Motivated:    {"motivated", "motivation", "inspired", "driven", "determined", "focused", "ready", "energized", "enthusiastic", "passionate", "committed", "dedicated", "ambitious", "goal-oriented", "proactive"},
	Excited:      {"excited", "excitement", "thrilled", "enthusiastic", "eager", "looking forward", "anticipation", "cant wait", "pumped", "stoked", "hyped", "animated", "vibrant"},
	Disappointed: {"disappointed", "disappointment", "let down", "failed", "failure", "didnt work out", "not good enough", "fell short", "missed", "lost", "defeated", "crushed"},
	Worried:      {"worried", "worry", "concerned", "concern", "troubled", "bothered", "disturbed", "uneasy", "apprehensive", "fearful", "afraid", "scared"},
	Tired:        {"tired", "exhausted", "fatigued", "weary", "drained", "worn out", "sleepy", "drowsy", "lethargic", "no energy", "burned out"},
}

var concernKeywords = map[string][]string{
	ConcernAcademic: {"study", "studying", "exam", "exams", "test", "tests", "grades", "marks", "assignment", "assignments", "project", "projects", "class", "classes", "course", "courses", "subject", "subjects", "semester", "term", "college", "university"},
	ConcernSocial:   {"friends", "friendship", "relationship", "relationships", "people", "social", "talk", "talking", "communication", "alone", "lonely", "isolated"},
	ConcernSleep:    {"sleep", "sleeping", "insomnia", "sleepless", "awake", "night", "nights", "tired", "fatigue", "rest", "restless"},
	ConcernFuture:   {"future", "career", "job", "jobs", "work", "employment", "professional", "path", "direction", "goals", "ambition"},
	ConcernFamily:   {"family", "parents", "parent", "mother", "father", "sibling", "siblings", "brother", "sister", "home", "house"},
	ConcernHealth:   {"health", "healthy", "sick", "illness", "disease", "pain", "ache", "headache", "stomach", "body", "exercise", "diet"},
}

// Stopwords dropped before token scoring. Emotional modifiers like "down"
// and "not" are kept on purpose.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true,
}

// Vague negative phrasings that imply low mood without naming an emotion.
var indirectNegativePatterns = []string{
	"feel heavy", "nothing feels right", "not okay", "not good", "off today",
	"weird day", "strange day", "off", "down", "low", "not myself",
	"out of sorts", "not feeling well", "under the weather", "in a funk",
}

// Vague positive phrasings. These resolve to a mild happy reading rather
// than sharing the negative default.
var indirectPositivePatterns = []string{
	"good day", "great day", "wonderful day", "actually good", "pretty good",
	"not bad", "doing okay", "doing well", "fine", "alright", "better today",
}

var emotionalLanguagePatterns = []string{
	"feel", "feeling", "sad", "happy", "angry", "worried", "anxious", "stressed",
	"i am", "im", "makes me", "emotion", "mood", "cry", "tears", "overwhelmed",
}

var positiveSentimentWords = []string{
	"good", "great", "happy", "love", "excellent", "amazing", "wonderful",
	"fantastic", "perfect", "best", "awesome", "brilliant", "glad",
	"pleased", "delighted",
}

var negativeSentimentWords = []string{
	"bad", "terrible", "awful", "hate", "worst", "horrible", "disgusting",
	"sad", "angry", "frustrated", "annoyed", "disappointed", "upset",
}

var academicEntityWords = []string{"exam", "study", "class", "grade", "assignment", "project", "test", "semester"}
var socialEntityWords = []string{"friend", "family", "relationship", "people", "alone", "lonely", "social"}
var timeEntityWords = []string{"today", "tomorrow", "yesterday", "week", "month", "always", "never", "now"}
var intensityEntityWords = []string{"very", "really", "so", "extremely", "completely", "totally", "absolutely"}
