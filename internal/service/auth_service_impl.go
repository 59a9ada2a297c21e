package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	ciptypes "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	"github.com/clearpath-mortgage/backend/pkg/auth"
)

// CognitoAPI is the subset of the Cognito IDP client the auth service uses.
type CognitoAPI interface {
	InitiateAuth(ctx context.Context, params *cip.InitiateAuthInput, optFns ...func(*cip.Options)) (*cip.InitiateAuthOutput, error)
	RespondToAuthChallenge(ctx context.Context, params *cip.RespondToAuthChallengeInput, optFns ...func(*cip.Options)) (*cip.RespondToAuthChallengeOutput, error)
}

// cognitoAuthService authenticates admins against a Cognito user pool and
// re-signs a short-lived local token on success.
type cognitoAuthService struct {
	client       CognitoAPI
	clientID     string
	clientSecret string
	tokenSecret  []byte
	tokenTTL     time.Duration
}

// NewAuthService creates an AuthService over the given Cognito app client.
// clientSecret may be empty for app clients without a secret.
func NewAuthService(client CognitoAPI, clientID, clientSecret string, tokenSecret []byte, tokenTTL time.Duration) AuthService {
	return &cognitoAuthService{
		client:       client,
		clientID:     clientID,
		clientSecret: clientSecret,
		tokenSecret:  tokenSecret,
		tokenTTL:     tokenTTL,
	}
}

func (s *cognitoAuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	params := map[string]string{
		"USERNAME": email,
		"PASSWORD": password,
	}
	if s.clientSecret != "" {
		params["SECRET_HASH"] = s.secretHash(email)
	}

	out, err := s.client.InitiateAuth(ctx, &cip.InitiateAuthInput{
		AuthFlow:       ciptypes.AuthFlowTypeUserPasswordAuth,
		ClientId:       aws.String(s.clientID),
		AuthParameters: params,
	})
	if err != nil {
		return nil, fmt.Errorf("cognito initiate auth: %w", err)
	}

	if out.ChallengeName == ciptypes.ChallengeNameTypeNewPasswordRequired {
		return &LoginResult{
			Challenge: string(out.ChallengeName),
			Session:   aws.ToString(out.Session),
		}, nil
	}
	if out.AuthenticationResult == nil {
		return nil, errors.New("cognito returned no authentication result")
	}

	return s.issueLocal(email)
}

func (s *cognitoAuthService) CompleteNewPassword(ctx context.Context, email, newPassword, session string) (*LoginResult, error) {
	responses := map[string]string{
		"USERNAME":     email,
		"NEW_PASSWORD": newPassword,
	}
	if s.clientSecret != "" {
		responses["SECRET_HASH"] = s.secretHash(email)
	}

	out, err := s.client.RespondToAuthChallenge(ctx, &cip.RespondToAuthChallengeInput{
		ChallengeName:      ciptypes.ChallengeNameTypeNewPasswordRequired,
		ClientId:           aws.String(s.clientID),
		Session:            aws.String(session),
		ChallengeResponses: responses,
	})
	if err != nil {
		return nil, fmt.Errorf("cognito respond to challenge: %w", err)
	}
	if out.AuthenticationResult == nil {
		return nil, errors.New("cognito returned no authentication result")
	}

	return s.issueLocal(email)
}

// issueLocal re-signs the provider identity as a local admin token so that
// route auth never depends on the provider being reachable.
func (s *cognitoAuthService) issueLocal(email string) (*LoginResult, error) {
	token, err := auth.IssueToken(email, s.tokenSecret, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("issue admin token: %w", err)
	}
	return &LoginResult{Token: token}, nil
}

// secretHash computes the Cognito SECRET_HASH: HMAC-SHA256 of
// username+clientID keyed by the app client secret, base64-encoded.
func (s *cognitoAuthService) secretHash(username string) string {
	mac := hmac.New(sha256.New, []byte(s.clientSecret))
	mac.Write([]byte(username + s.clientID))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
