package quiz_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/saulo-duarte/quizgen/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockRepo(t *testing.T) (quiz.QuizRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return quiz.NewRepository(gdb), mock
}

const questionsJSON = `[{"question":"What pigment captures light?","options":{"A":"Keratin","B":"Chlorophyll","C":"Melanin","D":"Hemoglobin"},"correct_answer":"B"}]`

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		id := uuid.New()
		now := time.Now()

		mock.ExpectQuery(`SELECT \* FROM "quizzes" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "topic", "questions", "created_at", "updated_at"}).
				AddRow(id.String(), "Photosynthesis", []byte(questionsJSON), now, now))

		q, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.Equal(t, id, q.ID)
		assert.Equal(t, "Photosynthesis", q.Topic)
		require.Len(t, q.Questions, 1)
		assert.Equal(t, "Chlorophyll", q.Questions[0].Options["B"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT \* FROM "quizzes" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "topic", "questions", "created_at", "updated_at"}))

		q, err := repo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, q)
	})

	t.Run("DatabaseError", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT \* FROM "quizzes"`).WillReturnError(sql.ErrConnDone)

		_, err := repo.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, sql.ErrConnDone)
	})
}

func TestRepository_List(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "quizzes" ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "topic", "questions", "created_at", "updated_at"}).
			AddRow(uuid.NewString(), "Go", []byte(questionsJSON), now, now).
			AddRow(uuid.NewString(), "Rust", []byte(questionsJSON), now.Add(-time.Hour), now.Add(-time.Hour)))

	quizzes, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, quizzes, 2)
	assert.Equal(t, "Go", quizzes[0].Topic)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListResultsByQuiz(t *testing.T) {
	repo, mock := newMockRepo(t)
	quizID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "quiz_results" WHERE quiz_id = \$1 ORDER BY created_at DESC`).
		WithArgs(quizID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "quiz_id", "user_answers", "explanations", "score", "total_questions", "created_at", "updated_at"}).
			AddRow(uuid.NewString(), quizID.String(), []byte(`["A","B","A","C","D"]`), []byte(`["x","","","",""]`), 4, 5, now, now))

	results, err := repo.ListResultsByQuiz(context.Background(), quizID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, []string{"A", "B", "A", "C", "D"}, []string(results[0].UserAnswers))
	assert.Equal(t, "x", results[0].Explanations[0])
	assert.Equal(t, 80.0, results[0].Percentage())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateResult(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`INSERT INTO "quiz_results"`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	result := &quiz.QuizResult{
		QuizID:         uuid.New(),
		UserAnswers:    []string{"A", "A", "A", "A", "A"},
		Score:          1,
		TotalQuestions: 5,
	}
	require.NoError(t, repo.CreateResult(context.Background(), result))
	assert.NotEqual(t, uuid.Nil, result.ID, "id is assigned before insert")
	assert.NoError(t, mock.ExpectationsWereMet())
}
