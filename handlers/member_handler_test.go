package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"community-api/config"
	"community-api/handlers"
	"community-api/helper"
	"community-api/middleware"
	"community-api/models"
	"community-api/repositories"
	"community-api/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type envelope struct {
	Status  bool `json:"status"`
	Content *struct {
		Meta map[string]interface{} `json:"meta"`
		Data json.RawMessage        `json:"data"`
	} `json:"content"`
	Errors []models.APIError `json:"errors"`
}

type MemberHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine

	memberRole *models.Role

	aliceID    string
	aliceToken string
	bobID      string
	bobToken   string
	carolID    string

	community models.Community
}

func (suite *MemberHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)

	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	suite.Require().NoError(db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Community{},
		&models.Member{},
	))
	config.SeedRoles(db)
	suite.db = db

	suite.setupRouter()

	suite.memberRole = &models.Role{}
	suite.Require().NoError(db.Where("name = ?", models.RoleMember).First(suite.memberRole).Error)

	suite.aliceID, suite.aliceToken = suite.signup("alice")
	suite.bobID, suite.bobToken = suite.signup("bob")
	suite.carolID, _ = suite.signup("carol")

	suite.community = suite.createCommunity(suite.aliceToken, "Go Devs")
}

func (suite *MemberHandlerTestSuite) setupRouter() {
	userRepo := repositories.NewUserRepository(suite.db)
	roleRepo := repositories.NewRoleRepository(suite.db)
	communityRepo := repositories.NewCommunityRepository(suite.db)
	memberRepo := repositories.NewMemberRepository(suite.db)

	authService := services.NewAuthService(userRepo)
	communityService := services.NewCommunityService(communityRepo, memberRepo, roleRepo, userRepo)
	memberService := services.NewMemberService(memberRepo, communityRepo, userRepo, roleRepo)

	httpHelper := helper.NewHTTPHelper()
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	communityHandler := handlers.NewCommunityHandler(communityService, httpHelper)
	memberHandler := handlers.NewMemberHandler(memberService, httpHelper)

	router := gin.New()

	v1 := router.Group("/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
		}

		community := v1.Group("/community")
		{
			community.POST("", middleware.AuthMiddleware(), communityHandler.CreateCommunity)
			community.GET("/:id/members", communityHandler.GetCommunityMembers)
		}

		member := v1.Group("/member", middleware.AuthMiddleware())
		{
			member.POST("", memberHandler.AddMember)
			member.DELETE("/:id", memberHandler.RemoveMember)
		}
	}

	suite.router = router
}

func (suite *MemberHandlerTestSuite) do(method, path, token string, payload interface{}) (*httptest.ResponseRecorder, envelope) {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		suite.Require().NoError(err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var resp envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func (suite *MemberHandlerTestSuite) signup(name string) (id, token string) {
	w, resp := suite.do("POST", "/v1/auth/signup", "", models.SignupRequest{
		Name:     name,
		Email:    name + "@example.com",
		Password: "password123",
	})
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Require().True(resp.Status)
	suite.Require().NotNil(resp.Content)

	var user models.User
	suite.Require().NoError(json.Unmarshal(resp.Content.Data, &user))

	token, ok := resp.Content.Meta["access_token"].(string)
	suite.Require().True(ok)
	return user.ID, token
}

func (suite *MemberHandlerTestSuite) createCommunity(token, name string) models.Community {
	w, resp := suite.do("POST", "/v1/community", token, models.CreateCommunityRequest{Name: name})
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Require().True(resp.Status)

	var community models.Community
	suite.Require().NoError(json.Unmarshal(resp.Content.Data, &community))
	return community
}

func (suite *MemberHandlerTestSuite) addMemberRequest(userID string) models.AddMemberRequest {
	return models.AddMemberRequest{
		Community: suite.community.ID,
		User:      userID,
		Role:      suite.memberRole.ID,
	}
}

func (suite *MemberHandlerTestSuite) TestAddMember() {
	w, resp := suite.do("POST", "/v1/member", suite.aliceToken, suite.addMemberRequest(suite.bobID))
	suite.Equal(http.StatusOK, w.Code)
	suite.True(resp.Status)

	var member models.Member
	suite.Require().NoError(json.Unmarshal(resp.Content.Data, &member))
	suite.Equal(suite.bobID, member.UserID)
	suite.Equal(suite.community.ID, member.CommunityID)
}

func (suite *MemberHandlerTestSuite) TestAddMemberTwice() {
	w, _ := suite.do("POST", "/v1/member", suite.aliceToken, suite.addMemberRequest(suite.bobID))
	suite.Require().Equal(http.StatusOK, w.Code)

	w, resp := suite.do("POST", "/v1/member", suite.aliceToken, suite.addMemberRequest(suite.bobID))
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.False(resp.Status)
	suite.Require().Len(resp.Errors, 1)
	suite.Equal(models.CodeResourceExists, resp.Errors[0].Code)
	suite.Equal("User is already added in the community.", resp.Errors[0].Message)
}

func (suite *MemberHandlerTestSuite) TestAddMemberByNonPrivilegedActor() {
	w, _ := suite.do("POST", "/v1/member", suite.aliceToken, suite.addMemberRequest(suite.bobID))
	suite.Require().Equal(http.StatusOK, w.Code)

	// Bob is a plain member now; he cannot add carol.
	w, resp := suite.do("POST", "/v1/member", suite.bobToken, suite.addMemberRequest(suite.carolID))
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.False(resp.Status)
	suite.Require().Len(resp.Errors, 1)
	suite.Equal(models.CodeNotAllowedAccess, resp.Errors[0].Code)
}

func (suite *MemberHandlerTestSuite) TestAddMemberUnknownCommunity() {
	w, resp := suite.do("POST", "/v1/member", suite.aliceToken, models.AddMemberRequest{
		Community: "nonexistent",
		User:      suite.bobID,
		Role:      suite.memberRole.ID,
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Require().Len(resp.Errors, 1)
	suite.Equal(models.CodeResourceNotFound, resp.Errors[0].Code)
	suite.Equal("community", resp.Errors[0].Param)
}

func (suite *MemberHandlerTestSuite) TestAddMemberMissingFields() {
	w, resp := suite.do("POST", "/v1/member", suite.aliceToken, models.AddMemberRequest{
		Community: suite.community.ID,
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.False(resp.Status)
	suite.Require().NotEmpty(resp.Errors)
	for _, apiErr := range resp.Errors {
		suite.Equal(models.CodeInvalidInput, apiErr.Code)
	}
}

func (suite *MemberHandlerTestSuite) TestAddMemberWithoutToken() {
	w, resp := suite.do("POST", "/v1/member", "", suite.addMemberRequest(suite.bobID))
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.False(resp.Status)
	suite.Require().Len(resp.Errors, 1)
	suite.Equal(models.CodeNotSignedIn, resp.Errors[0].Code)
	suite.Equal("You need to sign in to proceed.", resp.Errors[0].Message)
}

func (suite *MemberHandlerTestSuite) TestRemoveMember() {
	w, _ := suite.do("POST", "/v1/member", suite.aliceToken, suite.addMemberRequest(suite.bobID))
	suite.Require().Equal(http.StatusOK, w.Code)

	w, resp := suite.do("DELETE", "/v1/member/"+suite.bobID, suite.aliceToken, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.True(resp.Status)
	suite.Nil(resp.Content)

	var count int64
	suite.Require().NoError(suite.db.Model(&models.Member{}).
		Where("user_id = ?", suite.bobID).
		Count(&count).Error)
	suite.Equal(int64(0), count)
}

func (suite *MemberHandlerTestSuite) TestRemoveMemberTwice() {
	w, _ := suite.do("POST", "/v1/member", suite.aliceToken, suite.addMemberRequest(suite.bobID))
	suite.Require().Equal(http.StatusOK, w.Code)

	w, _ = suite.do("DELETE", "/v1/member/"+suite.bobID, suite.aliceToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	w, resp := suite.do("DELETE", "/v1/member/"+suite.bobID, suite.aliceToken, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Require().Len(resp.Errors, 1)
	suite.Equal(models.CodeResourceNotFound, resp.Errors[0].Code)
	suite.Equal("Member not found.", resp.Errors[0].Message)
}

func (suite *MemberHandlerTestSuite) TestCommunityMembersListing() {
	w, _ := suite.do("POST", "/v1/member", suite.aliceToken, suite.addMemberRequest(suite.bobID))
	suite.Require().Equal(http.StatusOK, w.Code)

	w, resp := suite.do("GET", "/v1/community/"+suite.community.Slug+"/members", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.True(resp.Status)

	var members []models.CommunityMemberResponse
	suite.Require().NoError(json.Unmarshal(resp.Content.Data, &members))
	suite.Len(members, 2)
	suite.Equal(float64(2), resp.Content.Meta["total"])
}

func TestMemberHandlerSuite(t *testing.T) {
	suite.Run(t, new(MemberHandlerTestSuite))
}
