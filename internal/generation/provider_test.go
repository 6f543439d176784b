package generation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRawQuiz_StringOptions(t *testing.T) {
	payload := `{
		"title": "Go Basics",
		"questions": [
			{
				"questionText": "What keyword starts a goroutine?",
				"options": ["go", "run", "async", "spawn"],
				"correctAnswer": "go",
				"explanation": "The go keyword starts a goroutine.",
				"type": "multipleChoice"
			}
		]
	}`

	raw, err := DecodeRawQuiz([]byte(payload))
	require.NoError(t, err)

	assert.Equal(t, "Go Basics", raw.Title)
	require.Len(t, raw.Questions, 1)
	require.Len(t, raw.Questions[0].Options, 4)
	assert.Equal(t, "go", raw.Questions[0].Options[0].Text)
	assert.Empty(t, raw.Questions[0].Options[0].ID, "У простых строк нет ID")
}

func TestDecodeRawQuiz_ObjectOptions(t *testing.T) {
	payload := `{
		"title": "T",
		"questions": [
			{
				"questionText": "Q?",
				"options": [
					{"id": "a1", "text": "Yes"},
					{"text": "No"}
				],
				"correctAnswer": "Yes",
				"type": "multipleChoice"
			}
		]
	}`

	raw, err := DecodeRawQuiz([]byte(payload))
	require.NoError(t, err)

	opts := raw.Questions[0].Options
	require.Len(t, opts, 2)
	assert.Equal(t, "a1", opts[0].ID)
	assert.Equal(t, "Yes", opts[0].Text)
	assert.Empty(t, opts[1].ID)
	assert.Equal(t, "No", opts[1].Text)
}

func TestDecodeRawQuiz_MissingQuestionsField(t *testing.T) {
	_, err := DecodeRawQuiz([]byte(`{"title": "No questions here"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "questions")
}

func TestDecodeRawQuiz_EmptyQuestionsIsValid(t *testing.T) {
	// Пустой массив — валидный ответ декодера; несоответствие запрошенному
	// количеству разбирается выше
	raw, err := DecodeRawQuiz([]byte(`{"title": "T", "questions": []}`))
	require.NoError(t, err)
	assert.Empty(t, raw.Questions)
}

func TestDecodeRawQuiz_MalformedJSON(t *testing.T) {
	_, err := DecodeRawQuiz([]byte(`{"title": "broken`))
	assert.Error(t, err)
}

func TestRawOptionList_RejectsUnsupportedShapes(t *testing.T) {
	// Fail closed: числа, массивы и объекты без text отклоняются
	var l RawOptionList
	assert.Error(t, json.Unmarshal([]byte(`[42]`), &l))
	assert.Error(t, json.Unmarshal([]byte(`[["nested"]]`), &l))
	assert.Error(t, json.Unmarshal([]byte(`[{"id": "x"}]`), &l))
	assert.Error(t, json.Unmarshal([]byte(`"not an array"`), &l))
}

func TestRawOptionList_EmptyArray(t *testing.T) {
	var l RawOptionList
	require.NoError(t, json.Unmarshal([]byte(`[]`), &l))
	assert.Empty(t, l)
}
