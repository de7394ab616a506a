// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"net/http"

	"github.com/ziqni/ziqni-go-samples/internal/utils"
	"github.com/ziqni/ziqni-go-samples/models"
)

type versionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

func newVersionResponse(info models.AppBuildInfo) versionResponse {
	return versionResponse{
		Version: info.BuildVersion(),
		Date:    info.BuildDate(),
		Commit:  info.BuildCommit(),
	}
}

func (s *Server) getVersion(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, newVersionResponse(s.buildInfo), http.StatusOK)
}
