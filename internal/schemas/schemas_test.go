package schemas

import (
	"strings"
	"testing"

	"calc-service/internal/calculator"
	"calc-service/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreate_Validate(t *testing.T) {
	valid := UserCreate{Username: "johndoe", Email: "john@example.com", Password: "securepassword123"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name string
		mut  func(*UserCreate)
		want error
	}{
		{"username too short", func(u *UserCreate) { u.Username = "ab" }, ErrUsernameLength},
		{"username too long", func(u *UserCreate) { u.Username = strings.Repeat("x", 51) }, ErrUsernameLength},
		{"empty email", func(u *UserCreate) { u.Email = "" }, ErrInvalidEmail},
		{"bad email", func(u *UserCreate) { u.Email = "not-an-email" }, ErrInvalidEmail},
		{"password too short", func(u *UserCreate) { u.Password = "short" }, ErrPasswordLength},
		{"password too long", func(u *UserCreate) { u.Password = strings.Repeat("p", 101) }, ErrPasswordLength},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u := valid
			tc.mut(&u)
			assert.ErrorIs(t, u.Validate(), tc.want)
		})
	}
}

func TestUserCreate_ValidateMultibyteLengths(t *testing.T) {
	// Bounds are measured in characters, not bytes. "日本語" is three
	// characters across nine bytes.
	u := UserCreate{Username: "日本語", Email: "jp@example.com", Password: "securepassword123"}
	assert.NoError(t, u.Validate())

	u.Username = strings.Repeat("日", 50)
	assert.NoError(t, u.Validate())

	u.Username = strings.Repeat("日", 51)
	assert.ErrorIs(t, u.Validate(), ErrUsernameLength)

	u.Username = "johndoe"
	u.Password = strings.Repeat("ñ", 8)
	assert.NoError(t, u.Validate())

	u.Password = "ñé"
	assert.ErrorIs(t, u.Validate(), ErrPasswordLength)
}

func TestUserUpdate_Validate(t *testing.T) {
	username := "newname"
	email := "new@example.com"
	bad := "x"
	wide := strings.Repeat("日", 50)

	assert.ErrorIs(t, UserUpdate{}.Validate(), ErrNoFieldsToUpdate)
	assert.NoError(t, UserUpdate{Username: &wide}.Validate())
	assert.NoError(t, UserUpdate{Username: &username}.Validate())
	assert.NoError(t, UserUpdate{Email: &email}.Validate())
	assert.NoError(t, UserUpdate{Username: &username, Email: &email}.Validate())
	assert.ErrorIs(t, UserUpdate{Username: &bad}.Validate(), ErrUsernameLength)
	assert.ErrorIs(t, UserUpdate{Email: &bad}.Validate(), ErrInvalidEmail)
}

func TestUserLogin_Validate(t *testing.T) {
	assert.NoError(t, UserLogin{Username: "johndoe", Password: "secret"}.Validate())
	assert.ErrorIs(t, UserLogin{Password: "secret"}.Validate(), ErrMissingCredentials)
	assert.ErrorIs(t, UserLogin{Username: "johndoe"}.Validate(), ErrMissingCredentials)
}

func TestCalculationCreate_Validate(t *testing.T) {
	// Zero as the second operand is only rejected for division.
	for _, op := range []calculator.Operation{calculator.OperationAdd, calculator.OperationSubtract, calculator.OperationMultiply} {
		req := CalculationCreate{A: 1, B: 0, Type: op}
		assert.NoError(t, req.Validate(), "operation %s", op)
	}

	req := CalculationCreate{A: 10, B: 0, Type: calculator.OperationDivide}
	err := req.Validate()
	var divErr *calculator.DivisionByZeroError
	require.ErrorAs(t, err, &divErr)
	assert.Equal(t, "Division by zero is not allowed", err.Error())

	req = CalculationCreate{A: 10, B: 3, Type: calculator.OperationDivide}
	assert.NoError(t, req.Validate())
}

func TestCalculationCreate_ValidateUnknownType(t *testing.T) {
	req := CalculationCreate{A: 1, B: 2, Type: "Modulo"}
	err := req.Validate()
	var unsupported *calculator.UnsupportedOperationError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "Modulo", unsupported.Name)
}

func TestCalculationCreate_FieldErrorWinsOverCrossField(t *testing.T) {
	// Unknown type and zero divisor at once: the type error is reported.
	req := CalculationCreate{A: 1, B: 0, Type: "Modulo"}
	err := req.Validate()
	var unsupported *calculator.UnsupportedOperationError
	require.ErrorAs(t, err, &unsupported)
}

func TestCalculationUpdate_Apply(t *testing.T) {
	owner := uuid.New()
	current := models.Calculation{
		A:      10,
		B:      4,
		Type:   string(calculator.OperationDivide),
		Result: 2.5,
		UserID: &owner,
	}

	t.Run("empty payload keeps stored fields", func(t *testing.T) {
		merged := CalculationUpdate{}.Apply(current)
		assert.Equal(t, CalculationCreate{A: 10, B: 4, Type: calculator.OperationDivide, UserID: &owner}, merged)
		assert.NoError(t, merged.Validate())
	})

	t.Run("partial payload overrides only present fields", func(t *testing.T) {
		b := 5.0
		merged := CalculationUpdate{B: &b}.Apply(current)
		assert.Equal(t, 10.0, merged.A)
		assert.Equal(t, 5.0, merged.B)
		assert.Equal(t, calculator.OperationDivide, merged.Type)
	})

	t.Run("zero divisor caught after merge", func(t *testing.T) {
		b := 0.0
		merged := CalculationUpdate{B: &b}.Apply(current)
		var divErr *calculator.DivisionByZeroError
		require.ErrorAs(t, merged.Validate(), &divErr)
	})

	t.Run("switching away from divide lifts the zero rule", func(t *testing.T) {
		b := 0.0
		op := calculator.OperationMultiply
		merged := CalculationUpdate{B: &b, Type: &op}.Apply(current)
		assert.NoError(t, merged.Validate())
	})

	t.Run("corrupted stored type surfaces as unsupported operation", func(t *testing.T) {
		broken := current
		broken.Type = "Exponent"
		merged := CalculationUpdate{}.Apply(broken)
		var unsupported *calculator.UnsupportedOperationError
		require.ErrorAs(t, merged.Validate(), &unsupported)
		assert.Equal(t, "Exponent", unsupported.Name)
	})
}
