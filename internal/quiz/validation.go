package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/saulo-duarte/quizgen/internal/aiquiz"
	"github.com/xeipuuv/gojsonschema"
)

// ValidationError carries per-field messages for a rejected request.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newFieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string][]string{field: {message}}}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{Fields: map[string][]string{}}
	for _, fe := range verrs {
		field := fe.Field()
		out.Fields[field] = append(out.Fields[field], fieldMessage(fe))
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s characters.", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("The %s field must have at least %s items.", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", fe.Field())
	default:
		return fmt.Sprintf("The %s field is invalid.", fe.Field())
	}
}

const questionSchema = `{
  "type": "object",
  "required": ["question", "options", "correct_answer"],
  "properties": {
    "question": {"type": "string", "minLength": 1},
    "options": {
      "type": "object",
      "required": ["A", "B", "C", "D"],
      "additionalProperties": false,
      "properties": {
        "A": {"type": "string", "minLength": 1},
        "B": {"type": "string", "minLength": 1},
        "C": {"type": "string", "minLength": 1},
        "D": {"type": "string", "minLength": 1}
      }
    },
    "correct_answer": {"type": "string", "enum": ["A", "B", "C", "D"]}
  }
}`

var questionSchemaLoader = gojsonschema.NewStringLoader(questionSchema)

// ValidateQuestions checks the generated quiz before it is stored: exactly
// QuestionsPerQuiz questions, options keyed A-D, and a correct answer naming
// one of those options.
func ValidateQuestions(questions []aiquiz.Question) error {
	if len(questions) != aiquiz.QuestionsPerQuiz {
		return fmt.Errorf("%w: expected %d questions, got %d", ErrInvalidQuestions, aiquiz.QuestionsPerQuiz, len(questions))
	}

	for i, q := range questions {
		doc, err := json.Marshal(q)
		if err != nil {
			return fmt.Errorf("%w: question %d: %v", ErrInvalidQuestions, i+1, err)
		}

		result, err := gojsonschema.Validate(questionSchemaLoader, gojsonschema.NewBytesLoader(doc))
		if err != nil {
			return fmt.Errorf("%w: question %d: %v", ErrInvalidQuestions, i+1, err)
		}
		if !result.Valid() {
			msgs := make([]string, 0, len(result.Errors()))
			for _, e := range result.Errors() {
				msgs = append(msgs, e.String())
			}
			return fmt.Errorf("%w: question %d: %s", ErrInvalidQuestions, i+1, strings.Join(msgs, "; "))
		}
	}
	return nil
}
