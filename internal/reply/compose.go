package reply

import "github.com/campusflow/campus-assistant-go/internal/emotion"

// Per-emotion line pools for the compositional reply path. Emotions
// without a dedicated pool fall through to the generic lines.

var acknowledgmentPools = map[string][]string{
	emotion.Sad:      {"I can hear that you're feeling sad", "I understand you're experiencing sadness", "I hear the sadness in your words"},
	emotion.Anxious:  {"I can sense that you're feeling anxious", "I understand you're dealing with anxiety", "I hear that worry is affecting you"},
	emotion.Stressed: {"I can hear how overwhelmed you're feeling", "I understand you're under a lot of stress", "I hear that stress is weighing on you"},
	emotion.Happy:    {"It's wonderful to hear that you're feeling happy", "I can sense the joy in your words", "I understand you're experiencing happiness"},
	emotion.Angry:    {"I can hear that you're feeling angry", "I understand you're dealing with frustration", "I hear the anger in your words"},
	emotion.Worried:  {"I can hear that you're feeling worried", "I understand you're dealing with concern", "I hear that worry is on your mind"},
	emotion.Tired:    {"I can hear how exhausted you're feeling", "I understand you're dealing with fatigue", "I hear that tiredness is affecting you"},
	emotion.Lonely:   {"I can hear that you're feeling lonely", "I understand you're experiencing loneliness", "I hear the isolation in your words"},
}

var genericAcknowledgments = []string{"I hear you", "I understand you're going through something"}

var understandingPools = map[string][]string{
	emotion.Sad:      {"That feeling of sadness can be so heavy to carry", "Sadness shows you have a deep capacity to care", "Those sad feelings are completely valid"},
	emotion.Anxious:  {"Anxiety can make everything feel so overwhelming", "That worried feeling is your mind trying to protect you", "Anxiety is exhausting when it takes over"},
	emotion.Stressed: {"Stress can make even small things feel impossible", "That overwhelmed feeling is completely understandable", "Stress affects every part of your life"},
	emotion.Happy:    {"Happiness is such a beautiful and precious feeling", "That joy is wonderful to experience", "Happy feelings give us energy and hope"},
	emotion.Angry:    {"Anger is often a sign that something important to you was violated", "That frustration shows you care deeply about things", "Anger is a natural and valid emotion"},
	emotion.Worried:  {"Worry shows you're thoughtful and care about outcomes", "That concerned feeling means you're being responsible", "Worry is your brain trying to keep you safe"},
	emotion.Tired:    {"Exhaustion is your body's signal that you need rest", "That fatigue affects both your mind and body", "Being tired makes everything more difficult"},
	emotion.Lonely:   {"Loneliness is one of the most painful human emotions", "That isolated feeling hurts so deeply", "Loneliness shows your natural need for connection"},
}

var genericUnderstandings = []string{"What you're experiencing is real and valid"}

var guidancePools = map[string][]string{
	emotion.Sad: {
		"Be gentle with yourself and allow yourself to feel without judgment",
		"Remember that emotions come in waves and this feeling will pass",
		"It's okay to not be okay - give yourself permission to rest",
	},
	emotion.Anxious: {
		"Try focusing on your breathing and grounding yourself in the present moment",
		"Remember that anxiety is temporary, even when it feels overwhelming",
		"Break down your worries into smaller, manageable pieces",
	},
	emotion.Stressed: {
		"Consider which tasks are actually urgent and which can wait",
		"Remember that you don't have to handle everything perfectly",
		"Take things one step at a time and one moment at a time",
	},
	emotion.Happy: {
		"Savor this moment and hold onto this positive energy",
		"Share your joy with others - happiness is contagious",
		"Remember this feeling when times get tough - it's proof that happiness is possible",
	},
	emotion.Angry: {
		"Channel that energy into something constructive when you're ready",
		"Take deep breaths and remember you're stronger than your anger",
		"Acknowledge the feeling without letting it drive all your decisions",
	},
	emotion.Worried: {
		"Focus on what you can control and let go of what you can't",
		"Remember that many things we worry about never actually happen",
		"Take one small step in the right direction",
	},
	emotion.Tired: {
		"Please prioritize rest - you're not a machine and need recovery time",
		"Listen to your body's signals and give yourself permission to rest",
		"Remember that rest is productive and necessary for your wellbeing",
	},
	emotion.Lonely: {
		"Consider reaching out to someone, even if it feels difficult",
		"Remember that you're not alone in feeling this way",
		"Take small steps toward connection when you're ready",
	},
}

var genericGuidance = []string{
	"Be patient and compassionate with yourself",
	"Remember that you're stronger than you realize",
	"Take things one moment at a time",
}

var encouragementPools = map[string][]string{
	emotion.Sad: {
		"You have the strength to get through this, even when it doesn't feel like it",
		"This feeling will pass with time, and brighter days will come again",
		"You're not alone in this, and support is available when you need it",
	},
	emotion.Anxious: {
		"You've handled difficult moments before and you'll get through this too",
		"Your resilience is remarkable, even when you can't see it right now",
		"This anxiety will ease, and you'll find your peace again",
	},
	emotion.Stressed: {
		"You're doing your best in difficult circumstances, and that's enough",
		"This pressure will lift, and you'll find your balance again",
		"You have more strength and resources than you realize",
	},
	emotion.Happy: {
		"You deserve every bit of this happiness and so much more",
		"This joy is a reflection of the amazing person you are",
		"Keep embracing these positive moments - they fuel your strength",
	},
	emotion.Angry: {
		"Your feelings are valid, and you have the wisdom to handle this constructively",
		"This intensity will pass, and you'll find clarity again",
		"You have the strength to channel this energy in positive ways",
	},
	emotion.Worried: {
		"You're more capable than you give yourself credit for",
		"Trust that you have the resources to handle whatever comes",
		"This concern shows your wisdom and thoughtfulness",
	},
	emotion.Tired: {
		"You deserve rest and recovery - it's essential for your wellbeing",
		"Taking care of yourself is a sign of strength, not weakness",
		"You'll find your energy again with proper rest and self-care",
	},
	emotion.Lonely: {
		"You deserve connection and meaningful relationships",
		"This feeling will ease, and you'll find your people",
		"Your desire for connection shows your beautiful capacity for relationships",
	},
}

var genericEncouragements = []string{
	"You're stronger and more resilient than you realize",
	"This moment will pass, and you'll find your way through",
	"You deserve kindness, especially from yourself",
}
