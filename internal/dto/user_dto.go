package dto

import (
	"coboard-api/internal/domain"
	"coboard-api/internal/util"
)

// SignupRequest represents the request to register an anonymous user
type SignupRequest struct {
	AID  string `json:"aid" binding:"required"`
	APW  string `json:"apw" binding:"required"`
	Mail string `json:"mail" binding:"required,email"`
}

// SEUserResponse represents a registered user
type SEUserResponse struct {
	SID      string  `json:"sid"`
	SProfile *string `json:"sprofile"`
	SFile    *string `json:"sfile"`
	Username *string `json:"username"`
}

// NewSEUserResponse converts a registered user to its wire form, encoding
// the profile image. The password column never leaves the service.
func NewSEUserResponse(u *domain.SEUser) SEUserResponse {
	resp := SEUserResponse{
		SID:      u.SID,
		SFile:    u.SFile,
		Username: OptionalString(u.Username),
	}
	if len(u.SProfile) > 0 {
		profile := util.EncodeImage(u.SProfile)
		resp.SProfile = &profile
	}
	return resp
}

// AnonymousUserResponse represents an anonymous user
type AnonymousUserResponse struct {
	AID      string  `json:"aid"`
	AProfile *string `json:"aprofile"`
	Mail     string  `json:"mail"`
}

// NewAnonymousUserResponse converts an anonymous user to its wire form
func NewAnonymousUserResponse(u *domain.AnonymousUser) AnonymousUserResponse {
	resp := AnonymousUserResponse{
		AID:  u.AID,
		Mail: u.Mail,
	}
	if len(u.AProfile) > 0 {
		profile := util.EncodeImage(u.AProfile)
		resp.AProfile = &profile
	}
	return resp
}

// UserListResponse represents all users of both kinds
type UserListResponse struct {
	SE        []SEUserResponse        `json:"se"`
	Anonymous []AnonymousUserResponse `json:"anonymous"`
}

// SEUserProfileResponse represents a registered user with their bookmarked
// forums, created forums and uploaded files
type SEUserProfileResponse struct {
	SEUserResponse
	Bookmarked []ForumResponse `json:"bookmarked"`
	Created    []ForumResponse `json:"created"`
	Files      []FileResponse  `json:"files"`
}

// AnonymousUserProfileResponse represents an anonymous user with their
// bookmarked forums and uploaded files
type AnonymousUserProfileResponse struct {
	AnonymousUserResponse
	Bookmarked []ForumResponse `json:"bookmarked"`
	Files      []FileResponse  `json:"files"`
}

// UpdateUserRequest represents the request to update a user of either kind.
// For anonymous users the username field replaces the aid.
type UpdateUserRequest struct {
	StudentID    string `json:"studentId"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	ProfileImage string `json:"profileImage"`
}
