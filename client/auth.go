/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/OSSystems/pkg/log"
)

type AuthClient struct {
}

type Authenticator interface {
	SignIn(api ApiRequester, email, password string) (*Session, error)
}

func (u *AuthClient) SignIn(api ApiRequester, email, password string) (*Session, error) {
	if api == nil {
		finalErr := fmt.Errorf("invalid api requester")
		log.Error(finalErr)
		return nil, finalErr
	}

	url := serverURL(api.Client(), AuthEndpoint)

	data := map[string]interface{}{
		"email":    email,
		"password": password,
		"api_key":  api.Client().apiKey,
	}

	body, err := json.Marshal(data)
	if err != nil {
		finalErr := fmt.Errorf("failed to marshal sign-in request: %s", err)
		log.Error(finalErr)
		return nil, finalErr
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		finalErr := fmt.Errorf("failed to create sign-in request: %s", err)
		log.Error(finalErr)
		return nil, finalErr
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := api.Do(req)
	if err != nil {
		finalErr := fmt.Errorf("sign-in request failed: %s", err)
		log.Error(finalErr)
		return nil, finalErr
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		finalErr := fmt.Errorf("sign-in rejected. HTTP code: %d", res.StatusCode)
		log.Error(finalErr)
		return nil, finalErr
	}

	var session Session
	if err = json.NewDecoder(res.Body).Decode(&session); err != nil {
		finalErr := fmt.Errorf("failed to parse sign-in response: %s", err)
		log.Error(finalErr)
		return nil, finalErr
	}

	if session.UID == "" || session.Token == "" {
		finalErr := fmt.Errorf("sign-in response missing uid or token")
		log.Error(finalErr)
		return nil, finalErr
	}

	log.Info("signed in as uid ", session.UID)

	return &session, nil
}

func NewAuthClient() *AuthClient {
	return &AuthClient{}
}
