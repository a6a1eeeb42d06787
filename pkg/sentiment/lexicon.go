package sentiment

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

var positiveWords = wordSet(
	"happy", "joy", "grateful", "excited", "proud", "calm", "peaceful", "optimistic",
	"great", "good", "excellent", "amazing", "love", "loved", "progress", "energized", "relaxed",
	"wonderful", "productive", "fantastic", "accomplished",
)

var negativeWords = wordSet(
	"tired", "fatigue", "fatigued", "exhausted", "stressed", "stress", "anxious", "anxiety",
	"worried", "overwhelmed", "sad", "upset", "angry", "frustrated", "burned", "burnt",
	"depressed", "bad", "terrible", "awful",
)

var angerWords = wordSet("angry", "furious", "mad", "irritated", "annoyed", "frustrated")

var sadnessWords = wordSet("sad", "down", "depressed", "blue", "tearful", "lonely")

var stressWords = wordSet("stressed", "anxious", "anxiety", "overwhelmed", "pressure", "burned", "burnt")
