package reply

import "github.com/campusflow/campus-assistant-go/internal/emotion"

// DefaultTemplates returns the built-in per-emotion template pools used
// when the admin store has no curated templates. Each template may carry
// a {context} placeholder for the detected concern clause. Callers get a
// fresh copy and may mutate it.
func DefaultTemplates() map[string][]string {
	out := make(map[string][]string, len(defaultTemplates))
	for label, pool := range defaultTemplates {
		list := make([]string, len(pool))
		copy(list, pool)
		out[label] = list
	}
	return out
}

// GeneralSupport is the pool key for the emotion-agnostic template pool.
const GeneralSupport = "general_support"

var defaultTemplates = map[string][]string{
	emotion.Anxious: {
		"I can hear that you're feeling anxious{context}. That's a tough feeling to carry, but remember anxiety is temporary and you're stronger than you think. Take a deep breath and ground yourself - you've handled difficult moments before and you'll get through this too. Your feelings are valid, and this feeling will pass with time. 💙",
		"That anxious feeling{context} sounds overwhelming right now. Your body is trying to protect you, even though it feels uncomfortable and exhausting. Try grounding yourself by noticing 5 things you can see and 4 you can touch around you. You have the tools to manage this, even when it doesn't feel like it. 🌿",
		"I understand you're dealing with anxiety{context}. It's exhausting when your mind races with worries that won't quiet down. Be gentle with yourself - anxiety isn't a weakness, it's actually a sign that you care deeply about things. You deserve peace, and you'll find your way through this moment. 💚",
		"Anxiety{context} can feel so heavy, like a weight on your chest that won't lift. Remember that you've survived 100% of your difficult days so far, and this one is no exception. This moment is temporary, even if it feels endless while you're in it. You're not alone in feeling this way. 🌸",
		"I hear that anxiety is affecting you{context} and making everything feel harder. Your nervous system is working overtime trying to keep you safe from perceived threats. Gently remind yourself: you're okay, you're capable, and this feeling will eventually ease. You've got this, one breath at a time. ✨",
	},
	emotion.Sad: {
		"I'm really sorry you're feeling this sadness{context}. It's okay to feel this way - sadness shows you have a deep capacity to care and connect with what matters. You don't have to be strong all the time, and it's okay to let yourself feel this emotion fully. This feeling is temporary, even if it doesn't feel like it right now. 💜",
		"That sadness{context} sounds heavy, and I want you to know it's okay to not be okay right now. Your feelings are valid and important - don't let anyone tell you otherwise. Be gentle with yourself today and allow yourself to feel without judgment or rushing to 'fix' it. You deserve compassion and understanding. 🌧️",
		"I hear you're carrying sadness{context} and that must feel exhausting. Remember that emotions come in waves - this feeling won't last forever, even if it feels overwhelming right now. You're not alone in this, even when it feels that way, and brighter days will come again. 💙",
		"That feeling of sadness{context} is real and important, so please don't dismiss it or rush yourself to 'get over it.' Your feelings matter and they deserve to be acknowledged and processed. I'm here with you in this moment, and you don't have to face this feeling alone. 🌿",
		"I understand you're feeling down{context} and that's completely okay. Be patient and compassionate with yourself - healing isn't linear and some days are harder than others. You deserve kindness, especially from yourself right now. This feeling will pass, even if it takes time. 💚",
	},
	emotion.Stressed: {
		"I can hear how overwhelmed you're feeling{context}. That stress is real and valid - your body and mind are carrying a heavy burden right now. Remember: you don't have to handle everything perfectly, and good enough is truly enough. You're doing your best, and that's more than sufficient. 💪",
		"That stress{context} sounds exhausting and I can understand why you feel this way. Your body and mind are telling you they need a break, and it's important to listen to those signals. Even small moments of rest can help recharge your batteries. You deserve moments of peace and rest. 🌿",
		"I understand you're feeling stressed{context} and everything probably feels like too much right now. When everything feels overwhelming, focus on just one small thing you can control in this moment. You're doing your best in difficult circumstances, and that takes incredible strength. 💙",
		"That overwhelmed feeling{context} is so draining and can make everything seem harder than it actually is. Stress is your body's way of saying something needs attention or adjustment. You don't have to solve everything at once - just focus on the next right step. ✨",
		"I hear you're stressed{context} and it sounds like you're carrying too much on your shoulders. Consider which tasks are actually urgent and which can wait until tomorrow or next week. Give yourself permission to prioritize your wellbeing and let some things wait. You're worth more than your productivity. 🌸",
	},
	emotion.Confused: {
		"I understand you're feeling confused{context}. That uncertainty can be really uncomfortable. It's okay not to have all the answers right now - clarity comes with time. 🤔",
		"That confusion{context} sounds frustrating. When things feel unclear, try breaking them down into smaller pieces. You don't need the whole picture right away. 💡",
		"I hear you're feeling uncertain{context}. It's completely normal to feel lost sometimes. Be patient with yourself as you navigate this - you're capable of finding your way. 🌟",
		"That confused feeling{context} shows you're thinking deeply and care about getting things right. Sometimes the best approach is to pause, breathe, and trust that clarity will come. 💚",
		"I understand you're feeling unclear{context}. Try focusing on what you do know, even if it's small. You have more wisdom than you think, and you'll find your path forward. 🌿",
	},
	emotion.Lonely: {
		"I'm sorry you're feeling lonely{context}. That's such a painful feeling, especially when surrounded by people but still feeling alone. Your feelings are valid and you deserve connection. 💙",
		"That loneliness{context} sounds really hard. Even though I'm an AI, I want you to know you're heard right now. Consider reaching out to someone - you're not as alone as you feel. 🌟",
		"I understand you're feeling isolated{context}. Loneliness can feel like a heavy blanket. Be gentle with yourself and consider one small step toward connection - you deserve it. 💚",
		"That feeling of loneliness{context} is so real. It's okay to admit you need more connection. You're not weak for feeling this way - you're human and deserve meaningful relationships. 🌸",
		"I hear you're feeling alone{context}. Your desire for connection shows your capacity for relationships. Consider reaching out, even if it feels difficult - you deserve connection. ✨",
	},
	emotion.Happy: {
		"That's wonderful to hear! 🎉 I'm so glad you're feeling good{context} and experiencing joy right now. Keep embracing these positive moments - they're important fuel for the challenging days that might come. Your happiness is well-deserved and beautiful to witness. Keep shining and spreading that joy! ✨",
		"I love hearing that you're feeling great{context}! 😊 Celebrate these moments fully and hold onto this positive energy as long as you can. You deserve all the good things coming your way and more. This happiness is a reflection of the amazing person you are. 🌟",
		"That's amazing! 🌈 So happy for you{context} and this beautiful feeling you're experiencing. These positive feelings are so important - savor every moment of them! Keep up whatever you're doing that's bringing you this joy. Remember this feeling when times get tough - it's proof that happiness is possible. 💫",
		"This makes me so happy to hear{context}! 🌻 Enjoy this beautiful moment completely - you've earned every bit of this happiness. Your joy is contagious and has the power to brighten others' days too. Keep spreading that positive energy wherever you go! ✨",
		"Yay! 🎊 I'm thrilled you're feeling happy{context} right now! Soak in these good vibes and let them energize every part of your life. You deserve every bit of this happiness and so much more. This is what life is all about - these precious moments of pure joy! 🌟",
	},
	emotion.Calm: {
		"That's so lovely to hear! 😌 That peace and calm{context} sounds wonderful. Savor these moments of tranquility - they're precious and show your inner strength. 🌿",
		"I'm glad you're feeling peaceful{context}. 🧘 That sense of calm is so valuable. Hold onto this feeling - it shows your resilience and the balance you're creating in your life. 💚",
		"That calm feeling{context} sounds beautiful. ✨ You've found that peaceful space within yourself. Treasure these moments - they're the foundation of your wellbeing. 🌸",
		"It's wonderful that you're feeling serene{context}. 🌊 That inner peace is special - you've cultivated this calm and it will carry you through challenging times too. 💙",
		"That sense of being at ease{context} is so valuable. 😊 You've found your center. This peaceful feeling shows your growth and strength - keep nurturing this calm. 🌟",
	},
	emotion.Angry: {
		"I understand you're feeling angry{context}. That anger is valid - it often shows that something important to you has been violated. Try to channel that energy constructively when you're ready. 🔥",
		"That anger{context} sounds intense. It's okay to feel angry - it's a natural emotion. Try not to let it consume you, though. Take deep breaths and remember you're stronger than your anger. 💢",
		"I hear you're frustrated{context}. That anger is telling you something needs attention. Listen to what it's trying to say, but don't let it drive all your decisions. You're in control. ⚡",
		"That feeling of being angry{context} is completely understandable. Sometimes things happen that rightfully make us mad. Your feelings are valid - just take care of yourself through this intensity. 💪",
		"I understand that anger{context}. It's like fire - it can be destructive but also purifying. Acknowledge the feeling, then decide how you want to use that energy constructively. 🌋",
	},
	emotion.Guilty: {
		"I hear that you're feeling guilty{context}. Remember that everyone makes mistakes - it's part of being human. What matters is learning and growing from them. Be kind to yourself. 💙",
		"Guilt{context} shows you have a conscience and care about your impact on others. That's actually a strength. If you need to make amends, do so gently - then work on forgiving yourself. 🌟",
		"Feeling guilty{context} can be heavy. Ask yourself: is this guilt helping you grow, or just punishing you? If you've learned the lesson, be compassionate with yourself. 💚",
		"I understand you're carrying guilt{context}. Remember that you're human, not perfect. Acknowledge what happened, learn from it, and move forward with compassion for yourself. 💜",
		"That guilty feeling{context} shows you care. If you need to apologize or make something right, do it - then release the burden. You're worthy of peace and self-compassion. 🌸",
	},
	emotion.Proud: {
		"You absolutely should be proud{context}! 🏆 Your accomplishments are real and meaningful. Take a moment to truly celebrate - you've earned this. You're amazing! ✨",
		"That sense of pride{context} is so well-deserved! 🌟 Own your achievements - you worked hard for them. This is YOUR moment to shine. Congratulations! 🎉",
		"Feeling proud{context} is exactly right! 💪 Your success didn't happen by accident - it came from your effort and determination. Celebrate yourself! You're incredible! 🌈",
		"Pride looks good on you{context}! 🎊 You've accomplished something meaningful and should absolutely bask in it. This is just the beginning of your success! ✨",
		"I'm proud of you too{context}! 🌟 You did the work, overcame challenges, and made it happen. Celebrate this victory - you've truly earned it! 🎉",
	},
	emotion.Relieved: {
		"I can imagine what a weight lifted{context}! 😌 Relief feels so good after carrying that burden. Take a deep breath and enjoy this moment of peace. You got through it! 🌿",
		"That relief{context} must feel amazing! 💚 You made it through! Now you can breathe easier. Take time to recover and appreciate this lighter feeling. You did it! ✨",
		"Relief{context} is such a beautiful feeling! 🌸 You've been carrying stress and can finally release it. Savor this peace - you've earned every bit of it! 💫",
		"I'm so glad you're feeling relief{context}! 🌈 That tension is finally releasing. Take this moment to rest and recharge. The hard part is over! 🌟",
		"What a relief this must be{context}! 😊 You can finally breathe again. Enjoy this calm after the storm - you navigated through beautifully! 💙",
	},
	emotion.Grateful: {
		"Gratitude{context} is such a powerful emotion! 🙏 It's beautiful that you're recognizing the good in your life. This mindset will bring even more positivity your way! 💚",
		"I love that you're feeling grateful{context}! 🌟 Appreciation for the good things magnifies joy. Hold onto this feeling - it's transformative and will attract more good things. ✨",
		"That gratitude{context} shows a beautiful heart! 🌻 Being thankful even in challenging times is a strength. Keep nurturing that appreciative spirit - it's wonderful! 💛",
		"Gratitude looks good on you{context}! 🌈 This positive mindset will attract more good things into your life. Keep counting those blessings and stay positive! 🌟",
		"Feeling grateful{context} is wonderful! 💙 This positive perspective will carry you through both good and challenging times. You're doing great and have much to appreciate! ✨",
	},
	emotion.Motivated: {
		"That motivation{context} is powerful! 🔥 Ride this wave of determination - it will carry you far. Channel this energy into action and watch yourself soar! 💪",
		"I love this motivated energy{context}! ⚡ When you feel this driven, amazing things happen. Use this momentum wisely - you're unstoppable right now! 🚀",
		"Your motivation{context} is inspiring! 🌟 This is the perfect time to chase your goals. Strike while the iron is hot - you've got the power and determination! ✨",
		"That drive{context} is incredible! 💫 When motivation strikes, seize it! You're in the perfect mindset to tackle challenges and achieve great things. Go for it! 🎯",
		"I can feel your determination{context}! 🌈 That motivated energy is going to take you places. Trust this feeling and let it guide your actions - success is on its way! 🌟",
	},
	emotion.Excited: {
		"I can feel your excitement{context}! 🎉 That energy is amazing! Ride this wave of enthusiasm - it's powerful and will help you achieve great things. Keep that fire burning! 🔥",
		"Your excitement is contagious{context}! 🌟 This anticipation and energy is wonderful. Channel it into action and watch amazing things unfold! I'm excited for you too! ✨",
		"Wow, I love the enthusiasm{context}! 🚀 Being this excited means something great is happening or coming. Embrace it fully and let it propel you forward! You've got this! 💫",
		"This is so exciting{context}! 🎊 That electric feeling of anticipation is one of life's best emotions. Enjoy every moment and let it fuel your next steps! 🌈",
		"Your excitement is absolutely infectious{context}! ⚡ Hold onto this feeling - it's precious and powerful. Great things are ahead for you and you're ready for them! 🌟",
	},
	emotion.Disappointed: {
		"I understand you're feeling disappointed{context}. That feeling of letdown is really tough when things didn't go as you hoped. Remember that disappointment doesn't define your worth or future success. This is just one moment, not your whole story. 💙",
		"That disappointment{context} sounds really hard to carry right now. It's okay to feel this way when expectations weren't met. Be gentle with yourself and remember that setbacks are often stepping stones to comebacks. You'll get through this. 🌿",
		"I hear you're dealing with disappointment{context}. That feeling when things don't work out can be discouraging, but it doesn't mean you failed. You're learning and growing, even when it feels painful. This feeling will pass with time. 💚",
		"That sense of disappointment{context} is completely understandable. When we invest hope in something and it doesn't pan out, it hurts. Allow yourself to feel this, but don't let it dim your light. You have so much strength and potential. 🌸",
		"I understand you're feeling let down{context}. Disappointment is a natural part of life and shows that you care deeply about things. This feeling isn't permanent - you'll find your way forward and maybe even discover something better. ✨",
	},
	emotion.Worried: {
		"I can hear that you're worried{context}. That concern shows you're thoughtful and care about outcomes, but constant worrying can be exhausting. Try to focus on what you can control and let go of what you can't. You're more capable than you think. 💙",
		"That worry{context} sounds like it's weighing heavily on you. Your mind is trying to protect you by anticipating problems, but it's important to stay present too. Take a deep breath and remember you've handled challenges before. You'll get through this too. 🌿",
		"I understand you're feeling concerned{context}. Worry is your brain's way of trying to keep you safe, but it can become overwhelming. Try breaking your concerns into smaller, manageable pieces. You don't have to solve everything at once. 💚",
		"That worried feeling{context} is completely understandable when things feel uncertain. Remember that many things we worry about never actually happen. Focus on the present moment and take things one step at a time. You're stronger than your worries. 🌸",
		"I hear you're feeling worried{context}. That shows you're conscientious and care deeply, but don't let worry steal your peace of mind. You have the resources and resilience to handle whatever comes your way. Trust in your ability to cope. ✨",
	},
	emotion.Tired: {
		"I can hear how exhausted you're feeling{context}. That fatigue is your body and mind telling you they need rest and recovery. It's okay to slow down and take care of yourself - you deserve rest without guilt. Your wellbeing matters more than productivity. 💙",
		"That tired feeling{context} sounds completely overwhelming right now. When you're running on empty, everything feels harder. Please prioritize rest - you're not a machine, and taking breaks is essential for your health. You deserve to recharge. 🌿",
		"I understand you're feeling drained{context}. Physical and mental exhaustion can make everything seem impossible. Be gentle with yourself and recognize that rest isn't lazy - it's necessary for your survival and success. You need this break. 💚",
		"That fatigue{context} is your body's signal that something needs to change. Whether it's more sleep, less stress, or better nutrition, listen to what your body is telling you. You can't pour from an empty cup - refill yours first. 🌸",
		"I hear you're completely worn out{context}. That level of exhaustion is unsustainable and needs your immediate attention. Please give yourself permission to rest fully without judgment. You're human, not superhuman, and that's perfectly okay. ✨",
	},
	GeneralSupport: {
		"I'm here to listen{context}. Whatever you're going through, your feelings are valid and important. You don't have to face this alone - sometimes just having someone acknowledge your struggle can bring relief. 💙",
		"Thank you for sharing this with me{context}. It takes courage to express what you're feeling, and I'm honored that you trust me. Remember that difficult moments don't last forever, and you're stronger and more resilient than you realize. 🌿",
		"I hear you, and I want you to know that what you're experiencing matters{context}. Be gentle with yourself - you're doing the best you can with what you have right now. That's genuinely enough, and you're worthy of compassion and care. 💚",
		"That sounds really challenging{context}. I'm here to support you through this difficult time. Remember that expressing your feelings is a sign of strength, not weakness. You're not alone in this, even when it might feel that way. 🌸",
		"I understand this is difficult for you{context}. Take things one moment at a time and one breath at a time. You don't have to have all the answers right now - just focus on getting through this moment with self-compassion. ✨",
	},
}

var greetingPool = []string{
	"Hello! I'm here to support you. How are you feeling today? 😊",
	"Hi there! I'm glad you reached out. What's on your mind? 💙",
	"Hey! I'm here to listen. How can I support you today? 🌟",
	"Hello! It's good to connect with you. How are you doing? 🌿",
	"Hi! I'm here to help. Feel free to share whatever's on your mind. 💚",
}

var politeFallbackPool = []string{
	"Thank you for sharing that with me. I'm here to listen to whatever you'd like to talk about. How are you feeling right now? 💙",
	"I appreciate you reaching out. Sometimes it helps to talk things through. What's been on your mind lately? 🌿",
	"I'm here to support you. Feel free to share more about what's going on, or we can just chat. Whatever feels right for you. 💚",
	"Thank you for connecting with me. I'm here to listen without judgment. What would be most helpful for you right now? 🌸",
	"I'm glad you're here. Sometimes just having someone to talk to can make a difference. What's on your heart today? ✨",
}

var friendlyFallbackPool = []string{
	"I appreciate you sharing that with me. While I'm specifically here to help with emotional wellbeing and mental health support, I'm glad you reached out. If you're experiencing any feelings like stress, worry, sadness, or happiness, I'm here to listen and support you through those emotions. Is there anything you'd like to talk about regarding how you're feeling? 💙",
	"Thank you for your message. I'm designed to provide emotional support and mental health assistance, so I'm best equipped to help when you're experiencing feelings or emotions. Whether you're feeling stressed, anxious, sad, happy, or any other emotion, I'm here to listen and offer support. How are you feeling today? 🌿",
	"I hear you, and I want to help. My specialty is providing support for emotional wellbeing and mental health. If you're dealing with any feelings - whether positive or challenging - I'm here to offer understanding and guidance. Sometimes just talking about how we feel can make a big difference. What's on your mind emotionally? 💚",
	"I appreciate you reaching out. I'm here specifically to help with emotional support and mental health matters. If you're experiencing any emotions like stress, anxiety, sadness, joy, or anything in between, I'm ready to listen and provide caring support. Your feelings matter, and I'm here to help you navigate them. How are you doing emotionally? ✨",
}

var supportingSentences = []string{
	"I'm here to support you through this journey.",
	"You deserve care and understanding during difficult times.",
	"Remember that seeking help is a sign of strength.",
	"Your feelings are valid and important.",
	"Taking care of your mental health is just as important as physical health.",
	"You're not alone in experiencing these challenges.",
	"Be patient and compassionate with yourself.",
	"Small steps forward are still progress.",
	"You have more resilience than you realize.",
	"This feeling will pass with time and support.",
}
