package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/openrescue/rescuemap-api/schema"
	"github.com/openrescue/rescuemap-api/store"
)

// listHelpRequests returns every active request, newest first. A storage
// failure degrades to an empty list instead of an error response so that a
// transient outage never blanks the map for everyone watching it.
func (s *Server) listHelpRequests(c *gin.Context) {
	requests, err := s.store.ListActiveHelpRequests()
	if err != nil {
		log.WithError(err).Error("list active help requests")
		c.Error(err)
		c.JSON(http.StatusOK, []schema.HelpRequest{})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// createHelpRequest files a new pin on the map and returns its ID. The
// caller is expected to record the ID locally; it is the only proof of
// ownership it will ever get.
func (s *Server) createHelpRequest(c *gin.Context) {
	var params struct {
		PlaceName         string      `json:"place_name"`
		Phone             string      `json:"phone"`
		BackupPhone       string      `json:"backup_phone"`
		NumPeople         interface{} `json:"num_people"`
		HasElderly        bool        `json:"has_elderly"`
		HasChildren       bool        `json:"has_children"`
		HasSick           bool        `json:"has_sick"`
		HasPets           bool        `json:"has_pets"`
		AdditionalMessage string      `json:"additional_message"`
		Latitude          interface{} `json:"latitude"`
		Longitude         interface{} `json:"longitude"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Phone == "" || params.Latitude == nil || params.Longitude == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorMissingRequiredFields)
		return
	}

	latitude, ok := parseCoordinate(params.Latitude)
	if !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}
	longitude, ok := parseCoordinate(params.Longitude)
	if !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	req, err := s.store.CreateHelpRequest(store.HelpRequestInput{
		PlaceName:         params.PlaceName,
		Phone:             params.Phone,
		BackupPhone:       params.BackupPhone,
		NumPeople:         coerceString(params.NumPeople),
		HasElderly:        params.HasElderly,
		HasChildren:       params.HasChildren,
		HasSick:           params.HasSick,
		HasPets:           params.HasPets,
		AdditionalMessage: params.AdditionalMessage,
		Latitude:          latitude,
		Longitude:         longitude,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": req.ID, "success": true})
}

// resolveHelpRequest moves a request from active to resolved. The only
// status the body may carry is `resolved`; the reverse transition does not
// exist. Resolving an already-resolved request succeeds again.
func (s *Server) resolveHelpRequest(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidID)
		return
	}

	var params struct {
		Status string `json:"status"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Status != schema.STATUS_RESOLVED {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidStatus)
		return
	}

	if err := s.store.ResolveHelpRequest(id); err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}

		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// deleteHelpRequest hard-removes a request in any status.
func (s *Server) deleteHelpRequest(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidID)
		return
	}

	if err := s.store.DeleteHelpRequest(id); err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}

		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// parseCoordinate accepts a JSON number or a numeric string. Map clients
// post whatever their form state holds, so both arrive in practice.
func parseCoordinate(v interface{}) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, true
	case string:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// coerceString renders num_people as free-form text. A missing field is an
// empty string, not an error; "3-4 people" is as valid as "3".
func coerceString(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return ""
	}
}
