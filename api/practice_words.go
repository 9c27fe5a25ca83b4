package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type practiceWord struct {
	Word       string `json:"word"`
	Phonetic   string `json:"phonetic"`
	Difficulty string `json:"difficulty"`
	Tips       string `json:"tips"`
}

var practiceWords = []practiceWord{
	{
		Word:       "pronunciation",
		Phonetic:   "/prəˌnʌnsiˈeɪʃən/",
		Difficulty: "Advanced",
		Tips:       "Break it down: pro-nun-ci-a-tion. Stress on the 4th syllable.",
	},
	{
		Word:       "through",
		Phonetic:   "/θruː/",
		Difficulty: "Intermediate",
		Tips:       "The 'th' sound is voiceless. Put your tongue between your teeth.",
	},
	{
		Word:       "comfortable",
		Phonetic:   "/ˈkʌmftəbəl/",
		Difficulty: "Intermediate",
		Tips:       "Often pronounced as 'comf-ter-ble' in casual speech.",
	},
	{
		Word:       "schedule",
		Phonetic:   "/ˈʃedjuːl/",
		Difficulty: "Beginner",
		Tips:       "British pronunciation. American version is /ˈskedʒuːl/.",
	},
}

func (a *API) PracticeWords(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"words": practiceWords,
	})
}
