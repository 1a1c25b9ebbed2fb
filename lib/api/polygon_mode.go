package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/modernopengl/quadview/lib/rendering/renderconsts"
)

type PolygonModeReq struct {
	Mode string `json:"mode" example:"fill"`
}

// @Summary	Get the current polygon mode
// @Router		/api/polygon-mode [get]
// @Tags		render
// @Produce	json
// @Success	200	{object}	PolygonModeReq
func (a *Api) getPolygonMode(w http.ResponseWriter, _ *http.Request) {
	a.writeJson(w, PolygonModeReq{Mode: a.scene.PolygonMode().String()})
}

// @Summary	Switch between wireframe and filled drawing
// @Router		/api/polygon-mode/{mode} [post]
// @Tags		render
// @Param		mode	path	string	true	"line or fill"
// @Success	200
// @Failure	400	{string}	string	"Unknown polygon mode"
func (a *Api) handlePolygonMode(w http.ResponseWriter, req *http.Request) {
	a.setPolygonMode(w, req.PathValue("mode"))
}

// @Summary	Switch between wireframe and filled drawing
// @Router		/api/polygon-mode [post]
// @Param		req	body	PolygonModeReq	true	"Polygon mode"
// @Tags		render
// @Accept		json
// @Success	200
// @Failure	400	{string}	string	"Could not decode json request"
func (a *Api) handlePolygonModeJson(w http.ResponseWriter, req *http.Request) {
	var modeReq PolygonModeReq
	err := json.NewDecoder(req.Body).Decode(&modeReq)
	if err != nil {
		http.Error(w, fmt.Sprintf("could not decode json request: %s", err), http.StatusBadRequest)
		return
	}
	a.setPolygonMode(w, modeReq.Mode)
}

func (a *Api) setPolygonMode(w http.ResponseWriter, name string) {
	mode, err := renderconsts.ParsePolygonMode(name)
	if err != nil {
		http.Error(w, fmt.Sprintf("could not set polygon mode: %s", err), http.StatusBadRequest)
		return
	}
	a.scene.SetPolygonMode(mode)
	a.writeOk(w)
}
