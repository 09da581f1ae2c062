package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// FriendHandlerSuite defines the test suite for FriendHandler
type FriendHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockFriendServiceInterface
	handler     *FriendHandler
	echo        *echo.Echo
	testUserID  uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *FriendHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockFriendServiceInterface(s.ctrl)
	s.handler = NewFriendHandler(s.mockService)

	s.echo = echo.New()
	s.echo.Validator = &CustomValidator{validator: validator.New()}

	s.testUserID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *FriendHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestFriendHandlerSuite runs the test suite
func TestFriendHandlerSuite(t *testing.T) {
	suite.Run(t, new(FriendHandlerSuite))
}

func (s *FriendHandlerSuite) createContextWithAuth(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.testUserID)
	return c, rec
}

func (s *FriendHandlerSuite) TestCreateFriend() {
	s.mockService.EXPECT().
		CreateFriend(s.testUserID, gomock.Any()).
		DoAndReturn(func(userID uuid.UUID, req *dto.CreateFriendRequest) (*models.Friend, error) {
			s.Equal("Alex", req.Name)
			return &models.Friend{
				ID:     uuid.New(),
				UserID: userID,
				Name:   req.Name,
				Email:  req.Email,
			}, nil
		})

	c, rec := s.createContextWithAuth(http.MethodPost, "/api/v1/friends",
		`{"name":"Alex","email":"alex@example.com"}`)

	s.NoError(s.handler.CreateFriend(c))
	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), "Alex")
}

func (s *FriendHandlerSuite) TestListFriends() {
	friends := []models.Friend{
		{ID: uuid.New(), UserID: s.testUserID, Name: "Alex", Balance: decimal.NewFromInt(25)},
		{ID: uuid.New(), UserID: s.testUserID, Name: "Robin", Balance: decimal.NewFromInt(-10)},
	}
	s.mockService.EXPECT().GetUserFriends(s.testUserID).Return(friends, nil)

	c, rec := s.createContextWithAuth(http.MethodGet, "/api/v1/friends", "")

	s.NoError(s.handler.ListFriends(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Alex")
	s.Contains(rec.Body.String(), "Robin")
}

func (s *FriendHandlerSuite) TestUpdateBalance() {
	friendID := uuid.New()
	s.mockService.EXPECT().
		UpdateFriendBalance(friendID, s.testUserID, gomock.Any()).
		DoAndReturn(func(fID, uID uuid.UUID, delta decimal.Decimal) (*models.Friend, error) {
			s.True(delta.Equal(decimal.NewFromInt(-150)))
			return &models.Friend{
				ID:      fID,
				UserID:  uID,
				Name:    "Alex",
				Balance: decimal.NewFromInt(-50),
			}, nil
		})

	c, rec := s.createContextWithAuth(http.MethodPost, "/api/v1/friends/"+friendID.String()+"/balance",
		`{"delta":-150}`)
	c.SetParamNames("id")
	c.SetParamValues(friendID.String())

	s.NoError(s.handler.UpdateBalance(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"balance":"-50"`)
}

func (s *FriendHandlerSuite) TestUpdateBalance_InvalidID() {
	c, rec := s.createContextWithAuth(http.MethodPost, "/api/v1/friends/nope/balance",
		`{"delta":10}`)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	s.NoError(s.handler.UpdateBalance(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "FRIEND_002")
}

func (s *FriendHandlerSuite) TestUpdateBalance_NotFound() {
	friendID := uuid.New()
	s.mockService.EXPECT().
		UpdateFriendBalance(friendID, s.testUserID, gomock.Any()).
		Return(nil, repositories.ErrFriendNotFound)

	c, rec := s.createContextWithAuth(http.MethodPost, "/api/v1/friends/"+friendID.String()+"/balance",
		`{"delta":10}`)
	c.SetParamNames("id")
	c.SetParamValues(friendID.String())

	s.NoError(s.handler.UpdateBalance(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "FRIEND_001")
}

func (s *FriendHandlerSuite) TestDeleteFriend() {
	friendID := uuid.New()
	s.mockService.EXPECT().DeleteFriend(friendID, s.testUserID).Return(nil)

	c, rec := s.createContextWithAuth(http.MethodDelete, "/api/v1/friends/"+friendID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(friendID.String())

	s.NoError(s.handler.DeleteFriend(c))
	s.Equal(http.StatusNoContent, rec.Code)
}
