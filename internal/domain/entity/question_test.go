package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestion_IsCorrect_ExactMatch(t *testing.T) {
	// Arrange
	question := &Question{
		ID:            1,
		QuestionText:  "Какой язык используется в Go?",
		Options:       OptionList{{ID: "a", Text: "Python"}, {ID: "b", Text: "Go"}},
		CorrectAnswer: "Go",
		Type:          QuestionTypeMultipleChoice,
	}

	// Act & Assert
	assert.True(t, question.IsCorrect("Go"), "Точное совпадение должно засчитываться")
}

func TestQuestion_IsCorrect_CaseSensitive(t *testing.T) {
	// Arrange: сравнение строгое — с учётом регистра, без трима
	question := &Question{CorrectAnswer: "Paris"}

	// Act & Assert
	assert.False(t, question.IsCorrect("paris"), "Регистр имеет значение")
	assert.False(t, question.IsCorrect("Paris "), "Пробелы не обрезаются")
	assert.False(t, question.IsCorrect(""), "Пустой ответ неверен")
}

func TestQuestion_HasOption(t *testing.T) {
	// Arrange
	question := &Question{
		Options: OptionList{
			{ID: "1", Text: "True"},
			{ID: "2", Text: "False"},
		},
	}

	// Act & Assert
	assert.True(t, question.HasOption("True"))
	assert.True(t, question.HasOption("False"))
	assert.False(t, question.HasOption("true"), "Сравнение текста варианта строгое")
	assert.False(t, question.HasOption("Maybe"))
}

func TestOptionList_ScanValue_RoundTrip(t *testing.T) {
	// Arrange
	original := OptionList{
		{ID: "opt-1", Text: "Вариант 1"},
		{ID: "opt-2", Text: "Вариант 2"},
	}

	// Act: сериализуем как для записи в JSONB и читаем обратно
	value, err := original.Value()
	require.NoError(t, err)

	var restored OptionList
	err = restored.Scan(value)
	require.NoError(t, err)

	// Assert: порядок и содержимое сохранены
	assert.Equal(t, original, restored)
}

func TestOptionList_Scan_NullAndEmpty(t *testing.T) {
	var fromNull OptionList
	require.NoError(t, fromNull.Scan(nil))
	assert.Empty(t, fromNull)

	var fromEmpty OptionList
	require.NoError(t, fromEmpty.Scan([]byte{}))
	assert.Empty(t, fromEmpty)
}

func TestOptionList_Value_EmptyIsJSONArray(t *testing.T) {
	// Пустой список должен записываться как [], а не NULL
	value, err := OptionList{}.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), value)
}

func TestStringArray_ScanValue_RoundTrip(t *testing.T) {
	original := StringArray{QuestionTypeMultipleChoice, QuestionTypeTrueFalse}

	value, err := original.Value()
	require.NoError(t, err)

	var restored StringArray
	require.NoError(t, restored.Scan(value))
	assert.Equal(t, original, restored)
}
