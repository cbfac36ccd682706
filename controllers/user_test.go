package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/gorilla/mux"
	"github.com/parvez1407/car-hut-server/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap/zaptest"
)

func newUserController(mt *mtest.T) *UserController {
	return &UserController{
		Users:        mt.DB.Collection("users"),
		Products:     mt.DB.Collection("products"),
		EmailService: utils.NewEmailService("", ""),
		Logger:       zaptest.NewLogger(mt),
	}
}

func TestIssueToken(t *testing.T) {
	utils.JwtKey = []byte("test-secret")
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("known email receives a token carrying its role", func(mt *mtest.T) {
		uc := newUserController(mt)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "carHut.users", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "email", Value: "buyer@example.com"},
				{Key: "role", Value: "buyer"},
			}))

		req := httptest.NewRequest(http.MethodGet, "/jwt?email=buyer@example.com", nil)
		rec := httptest.NewRecorder()

		uc.IssueToken(rec, req)

		assert.Equal(mt, http.StatusOK, rec.Code)

		var body map[string]string
		require.NoError(mt, json.Unmarshal(rec.Body.Bytes(), &body))
		require.NotEmpty(mt, body["accessToken"])

		claims := &utils.Claims{}
		_, err := jwt.ParseWithClaims(body["accessToken"], claims, func(token *jwt.Token) (interface{}, error) {
			return utils.JwtKey, nil
		})
		require.NoError(mt, err)
		assert.Equal(mt, "buyer@example.com", claims.Email)
		assert.Equal(mt, "buyer", claims.Role)
	})

	mt.Run("unknown email is forbidden with an empty token", func(mt *mtest.T) {
		uc := newUserController(mt)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "carHut.users", mtest.FirstBatch))

		req := httptest.NewRequest(http.MethodGet, "/jwt?email=nobody@example.com", nil)
		rec := httptest.NewRecorder()

		uc.IssueToken(rec, req)

		assert.Equal(mt, http.StatusForbidden, rec.Code)

		var body map[string]string
		require.NoError(mt, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(mt, "", body["accessToken"])
	})
}

func TestCheckAdmin(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("admin user", func(mt *mtest.T) {
		uc := newUserController(mt)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "carHut.users", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "email", Value: "admin@example.com"},
				{Key: "role", Value: "admin"},
			}))

		req := httptest.NewRequest(http.MethodGet, "/users/admin/admin@example.com", nil)
		req = mux.SetURLVars(req, map[string]string{"email": "admin@example.com"})
		rec := httptest.NewRecorder()

		uc.CheckAdmin(rec, req)

		assert.Equal(mt, http.StatusOK, rec.Code)
		assert.JSONEq(mt, `{"isAdmin": true}`, rec.Body.String())
	})

	mt.Run("unknown email is not an admin and not an error", func(mt *mtest.T) {
		uc := newUserController(mt)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "carHut.users", mtest.FirstBatch))

		req := httptest.NewRequest(http.MethodGet, "/users/admin/nobody@example.com", nil)
		req = mux.SetURLVars(req, map[string]string{"email": "nobody@example.com"})
		rec := httptest.NewRecorder()

		uc.CheckAdmin(rec, req)

		assert.Equal(mt, http.StatusOK, rec.Code)
		assert.JSONEq(mt, `{"isAdmin": false}`, rec.Body.String())
	})
}

func TestDeleteUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("existing user deletes with count 1", func(mt *mtest.T) {
		uc := newUserController(mt)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		req := httptest.NewRequest(http.MethodDelete, "/sellers/abc", nil)
		req = mux.SetURLVars(req, map[string]string{"id": primitive.NewObjectID().Hex()})
		rec := httptest.NewRecorder()

		uc.DeleteUser(rec, req)

		assert.Equal(mt, http.StatusOK, rec.Code)
		assert.Contains(mt, rec.Body.String(), `"DeletedCount":1`)
	})

	mt.Run("missing user deletes with count 0, not an error", func(mt *mtest.T) {
		uc := newUserController(mt)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		req := httptest.NewRequest(http.MethodDelete, "/sellers/abc", nil)
		req = mux.SetURLVars(req, map[string]string{"id": primitive.NewObjectID().Hex()})
		rec := httptest.NewRecorder()

		uc.DeleteUser(rec, req)

		assert.Equal(mt, http.StatusOK, rec.Code)
		assert.Contains(mt, rec.Body.String(), `"DeletedCount":0`)
	})

	mt.Run("malformed identifier is a bad request", func(mt *mtest.T) {
		uc := newUserController(mt)

		req := httptest.NewRequest(http.MethodDelete, "/sellers/abc", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "not-a-hex-id"})
		rec := httptest.NewRecorder()

		uc.DeleteUser(rec, req)

		assert.Equal(mt, http.StatusBadRequest, rec.Code)
	})
}

func TestUpsertUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("upsert acknowledges the update", func(mt *mtest.T) {
		uc := newUserController(mt)

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		body := bytes.NewBufferString(`{"name":"Parvez","role":"seller"}`)
		req := httptest.NewRequest(http.MethodPut, "/user/seller@example.com", body)
		req = mux.SetURLVars(req, map[string]string{"email": "seller@example.com"})
		rec := httptest.NewRecorder()

		uc.UpsertUser(rec, req)

		assert.Equal(mt, http.StatusOK, rec.Code)
		assert.Contains(mt, rec.Body.String(), `"MatchedCount":1`)
	})

	mt.Run("a null body is a bad request", func(mt *mtest.T) {
		uc := newUserController(mt)

		body := bytes.NewBufferString(`null`)
		req := httptest.NewRequest(http.MethodPut, "/user/seller@example.com", body)
		req = mux.SetURLVars(req, map[string]string{"email": "seller@example.com"})
		rec := httptest.NewRecorder()

		uc.UpsertUser(rec, req)

		assert.Equal(mt, http.StatusBadRequest, rec.Code)
	})
}

func TestVerifySeller(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("always finalizes the response with the user update", func(mt *mtest.T) {
		uc := newUserController(mt)

		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 3}, bson.E{Key: "nModified", Value: 3}), // products
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}), // user
		)

		body := bytes.NewBufferString(`{"email":"seller@example.com"}`)
		req := httptest.NewRequest(http.MethodPost, "/verification", body)
		rec := httptest.NewRecorder()

		uc.VerifySeller(rec, req)

		assert.Equal(mt, http.StatusOK, rec.Code)
		assert.Contains(mt, rec.Body.String(), `"MatchedCount":1`)
	})

	mt.Run("missing email is a bad request", func(mt *mtest.T) {
		uc := newUserController(mt)

		req := httptest.NewRequest(http.MethodPost, "/verification", bytes.NewBufferString(`{}`))
		rec := httptest.NewRecorder()

		uc.VerifySeller(rec, req)

		assert.Equal(mt, http.StatusBadRequest, rec.Code)
	})
}
