package auth_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/changhyeonkim/jpashop/go-api-server/internal/auth"
	"github.com/changhyeonkim/jpashop/go-api-server/internal/member"
	sharedError "github.com/changhyeonkim/jpashop/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/jpashop/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestEnvironment creates all dependencies needed for auth handler tests
func setupTestEnvironment(t *testing.T) (*gin.Engine, *gorm.DB, *testutil.MockTokenManager) {
	t.Helper()

	// Setup test database
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	// Setup dependencies
	memberRepo := member.NewMemberRepository()
	mockTokenManager := testutil.NewMockTokenManager()
	authService := auth.NewAuthService(db, memberRepo, mockTokenManager)
	authHandler := auth.NewAuthHandler(authService)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/signup", authHandler.Signup)
	router.POST("/api/v1/auth/login", authHandler.Login)

	return router, db, mockTokenManager
}

func signupRequest(body any) testutil.TestRequest {
	return testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/signup",
		Body:   body,
	}
}

func TestSignup_Success(t *testing.T) {
	// Given: Setup test environment
	router, db, _ := setupTestEnvironment(t)

	// When: Execute signup request
	recorder := testutil.ExecuteRequest(t, router, signupRequest(auth.SignupRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
		Address: &auth.AddressRequest{
			City:    "Seoul",
			Street:  "Teheran-ro 1",
			Zipcode: "06236",
		},
	}))

	// Then: Verify response
	require.Equal(t, http.StatusCreated, recorder.Code)

	var response auth.SignupResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.NotZero(t, response.ID)

	// Then: Member is findable by name, password is hashed
	found, err := member.NewMemberRepository().FindByName(context.Background(), db, "Test User")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, response.ID, found[0].ID)
	assert.Equal(t, "Seoul", found[0].Address.City)
	assert.NotEqual(t, "password123", found[0].Password)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	// Given: Setup test environment
	router, _, _ := setupTestEnvironment(t)

	// Given: Create first user
	firstRecorder := testutil.ExecuteRequest(t, router, signupRequest(auth.SignupRequest{
		Name:     "Test User",
		Email:    "duplicate@example.com",
		Password: "password123",
	}))
	require.Equal(t, http.StatusCreated, firstRecorder.Code)

	// When: Try to create another user with same email
	duplicateRecorder := testutil.ExecuteRequest(t, router, signupRequest(auth.SignupRequest{
		Name:     "Another User",
		Email:    "duplicate@example.com", // Same email
		Password: "password456",
	}))

	// Then: Verify error response
	assert.Equal(t, http.StatusConflict, duplicateRecorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, duplicateRecorder, &errorResponse)
	assert.NotEmpty(t, errorResponse.Status)
	assert.NotEmpty(t, errorResponse.Message)
	assert.Equal(t, "MEMBER-002", errorResponse.Code)
}

func TestSignup_DuplicateNameIsAllowed(t *testing.T) {
	router, db, _ := setupTestEnvironment(t)

	for _, email := range []string{"alice1@example.com", "alice2@example.com"} {
		recorder := testutil.ExecuteRequest(t, router, signupRequest(auth.SignupRequest{
			Name:     "Alice",
			Email:    email,
			Password: "password123",
		}))
		require.Equal(t, http.StatusCreated, recorder.Code, email)
	}

	found, err := member.NewMemberRepository().FindByName(context.Background(), db, "Alice")
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestSignup_ValidationError_MissingRequiredFields(t *testing.T) {
	// Given: Setup test environment
	router, _, _ := setupTestEnvironment(t)

	testCases := []struct {
		name        string
		requestBody map[string]string
		description string
	}{
		{
			name: "Missing name",
			requestBody: map[string]string{
				"email":    "test@example.com",
				"password": "password123",
			},
			description: "Should fail when name is missing",
		},
		{
			name: "Missing email",
			requestBody: map[string]string{
				"name":     "Test User",
				"password": "password123",
			},
			description: "Should fail when email is missing",
		},
		{
			name: "Missing password",
			requestBody: map[string]string{
				"name":  "Test User",
				"email": "test@example.com",
			},
			description: "Should fail when password is missing",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// When: Execute request with missing field
			recorder := testutil.ExecuteRequest(t, router, signupRequest(tc.requestBody))

			// Then: Verify validation error
			assert.Equal(t, http.StatusBadRequest, recorder.Code, tc.description)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.NotEmpty(t, errorResponse.Status, tc.description)
			assert.NotEmpty(t, errorResponse.Message, tc.description)
			assert.Equal(t, sharedError.ValidationFailed.Code, errorResponse.Code, tc.description)
		})
	}
}

func TestSignup_ValidationError_InvalidFields(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)

	testCases := []struct {
		name    string
		request auth.SignupRequest
	}{
		{
			name: "Invalid email",
			request: auth.SignupRequest{
				Name:     "Test User",
				Email:    "invalid-email-format",
				Password: "password123",
			},
		},
		{
			name: "Password too short",
			request: auth.SignupRequest{
				Name:     "Test User",
				Email:    "test@example.com",
				Password: "short", // Less than 8 characters
			},
		},
		{
			name: "Invalid zipcode",
			request: auth.SignupRequest{
				Name:     "Test User",
				Email:    "test@example.com",
				Password: "password123",
				Address:  &auth.AddressRequest{City: "Seoul", Zipcode: "12"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, signupRequest(tc.request))

			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.NotEmpty(t, errorResponse.Message)
		})
	}
}

func TestSignup_InvalidJSON(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, signupRequest("not-an-object"))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, sharedError.InvalidRequest.Code, errorResponse.Code)
}

func TestLogin_Success(t *testing.T) {
	router, _, mockTokenManager := setupTestEnvironment(t)

	var issuedFor string
	mockTokenManager.GenerateAccessTokenFunc = func(memberID, email string) (string, error) {
		issuedFor = email
		return "access-token-" + memberID, nil
	}

	recorder := testutil.ExecuteRequest(t, router, signupRequest(auth.SignupRequest{
		Name:     "Test User",
		Email:    "login@example.com",
		Password: "password123",
	}))
	require.Equal(t, http.StatusCreated, recorder.Code)

	var signup auth.SignupResponse
	testutil.ParseResponse(t, recorder, &signup)

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Email:    "login@example.com",
			Password: "password123",
		},
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var response auth.LoginResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "login@example.com", issuedFor)
	assert.Contains(t, response.AccessToken, "access-token-")
	assert.Equal(t, "mock-refresh-token", response.RefreshToken)
}

func TestLogin_WrongCredentials(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, signupRequest(auth.SignupRequest{
		Name:     "Test User",
		Email:    "login@example.com",
		Password: "password123",
	}))
	require.Equal(t, http.StatusCreated, recorder.Code)

	testCases := []struct {
		name    string
		request auth.LoginRequest
	}{
		{name: "Wrong password", request: auth.LoginRequest{Email: "login@example.com", Password: "password999"}},
		{name: "Unknown email", request: auth.LoginRequest{Email: "nobody@example.com", Password: "password123"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/auth/login",
				Body:   tc.request,
			})

			// Then: Same response for both, to not reveal whether the email exists
			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.Equal(t, "AUTH-003", errorResponse.Code)
		})
	}
}
