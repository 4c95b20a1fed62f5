package member_test

import (
	"errors"
	"net/http"
	"strconv"
	"testing"

	"github.com/changhyeonkim/jpashop/go-api-server/internal/member"
	sharedError "github.com/changhyeonkim/jpashop/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/jpashop/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupMemberRouter registers member routes with memberID already authenticated
func setupMemberRouter(t *testing.T, db *gorm.DB, memberID uint32) *gin.Engine {
	t.Helper()

	memberService := member.NewMemberService(db, member.NewMemberRepository())
	memberHandler := member.NewMemberHandler(memberService)

	router := testutil.SetupTestRouter()
	group := router.Group("/api/v1/members")
	if memberID != 0 {
		group.Use(testutil.AuthenticateAs(memberID))
	}
	group.GET("", memberHandler.ListMembers)
	group.GET("/me", memberHandler.GetProfile)
	group.PATCH("/me", memberHandler.UpdateName)
	group.DELETE("/me", memberHandler.Withdraw)
	group.GET("/:id", memberHandler.GetMember)

	return router
}

func setupAPI(t *testing.T, names ...string) (*gorm.DB, []uint32) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	seeded := testutil.SeedMembers(t, db, names...)
	ids := make([]uint32, 0, len(seeded))
	for _, m := range seeded {
		ids = append(ids, m.ID)
	}
	return db, ids
}

func TestListMembers_ByName(t *testing.T) {
	// Given: Alice, Bob, Alice
	db, ids := setupAPI(t, "Alice", "Bob", "Alice")
	router := setupMemberRouter(t, db, ids[1])

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members?name=Alice",
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)

	var response member.ListMembersResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, 2, response.Count)
	assert.ElementsMatch(t, []uint32{ids[0], ids[2]}, responseIDs(response.Members))
}

func TestListMembers_NoMatchIsEmptyArray(t *testing.T) {
	db, ids := setupAPI(t, "Alice", "Bob", "Alice")
	router := setupMemberRouter(t, db, ids[0])

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members?name=Carol",
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"count":0,"members":[]}`, recorder.Body.String())
}

func TestListMembers_EmptyNameIsLookup(t *testing.T) {
	// Given: no member has the empty name
	db, ids := setupAPI(t, "Alice", "Bob")
	router := setupMemberRouter(t, db, ids[0])

	// When: name is present but empty
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members?name=",
	})

	// Then: lookup of "", not the full list
	require.Equal(t, http.StatusOK, recorder.Code)

	var response member.ListMembersResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, 0, response.Count)
	assert.NotNil(t, response.Members)
	assert.Empty(t, response.Members)
}

func TestListMembers_EncodedName(t *testing.T) {
	db, ids := setupAPI(t, "홍 길동", "홍길동")
	router := setupMemberRouter(t, db, ids[0])

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members?name=%ED%99%8D+%EA%B8%B8%EB%8F%99",
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var response member.ListMembersResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, []uint32{ids[0]}, responseIDs(response.Members))
}

func TestListMembers_WithoutNameReturnsAll(t *testing.T) {
	db, ids := setupAPI(t, "Alice", "Bob", "Alice")
	router := setupMemberRouter(t, db, ids[0])

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members",
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var response member.ListMembersResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, ids, responseIDs(response.Members))
}

func TestListMembers_PersistenceFailure(t *testing.T) {
	db, mock := testutil.SetupMockDB(t)
	router := setupMemberRouter(t, db, 1)

	mock.ExpectQuery(`SELECT \* FROM "member"`).WillReturnError(errors.New("connection refused"))

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members?name=Alice",
	})

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, sharedError.InternalServerError.Code, errorResponse.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMember(t *testing.T) {
	db, ids := setupAPI(t, "Alice", "Bob")
	router := setupMemberRouter(t, db, ids[0])

	testCases := []struct {
		name         string
		url          string
		expectedCode int
		errorCode    string
	}{
		{name: "found", url: "/api/v1/members/" + strconv.FormatUint(uint64(ids[1]), 10), expectedCode: http.StatusOK},
		{name: "not found", url: "/api/v1/members/9999", expectedCode: http.StatusNotFound, errorCode: "MEMBER-001"},
		{name: "not a number", url: "/api/v1/members/abc", expectedCode: http.StatusBadRequest, errorCode: "MEMBER-003"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodGet,
				URL:    tc.url,
			})

			assert.Equal(t, tc.expectedCode, recorder.Code)
			if tc.errorCode != "" {
				var errorResponse sharedError.ErrorResponse
				testutil.ParseResponse(t, recorder, &errorResponse)
				assert.Equal(t, tc.errorCode, errorResponse.Code)
				return
			}

			var response member.MemberResponse
			testutil.ParseResponse(t, recorder, &response)
			assert.Equal(t, ids[1], response.ID)
			assert.Equal(t, "Bob", response.Name)
		})
	}
}

func TestGetProfile_Unauthenticated(t *testing.T) {
	db, _ := setupAPI(t)
	router := setupMemberRouter(t, db, 0)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members/me",
	})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestUpdateName_API(t *testing.T) {
	db, ids := setupAPI(t, "Alice", "Alice")
	router := setupMemberRouter(t, db, ids[0])

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPatch,
		URL:    "/api/v1/members/me",
		Body:   member.UpdateNameRequest{Name: "Bob"},
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	// Then: only the second Alice remains under that name
	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members?name=Alice",
	})
	var response member.ListMembersResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, []uint32{ids[1]}, responseIDs(response.Members))
}

func TestUpdateName_ValidationError(t *testing.T) {
	db, ids := setupAPI(t, "Alice")
	router := setupMemberRouter(t, db, ids[0])

	for _, name := range []string{"", "   ", "abcdefghijklmnopqrstu"} {
		t.Run(strconv.Quote(name), func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPatch,
				URL:    "/api/v1/members/me",
				Body:   map[string]string{"name": name},
			})

			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.Equal(t, sharedError.ValidationFailed.Code, errorResponse.Code)
			assert.Contains(t, errorResponse.Message, "name")
		})
	}
}

func TestWithdraw_API(t *testing.T) {
	// Given: Alice(1), Bob(2), Alice(3), authenticated as the first Alice
	db, ids := setupAPI(t, "Alice", "Bob", "Alice")
	router := setupMemberRouter(t, db, ids[0])

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    "/api/v1/members/me",
	})
	require.Equal(t, http.StatusNoContent, recorder.Code)

	// Then
	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members?name=Alice",
	})
	var response member.ListMembersResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, []uint32{ids[2]}, responseIDs(response.Members))
}
