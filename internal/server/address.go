package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	addressdomain "github.com/smallbiznis/quickstep/internal/address/domain"
)

func (s *Server) CreateAddress(c *gin.Context) {
	var req addressdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.addressSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	created(c, "addresses", resp.ID, resp)
}

func (s *Server) UpdateAddress(c *gin.Context) {
	var req addressdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.addressSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListAddresses(c *gin.Context) {
	resp, err := s.addressSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListAddressesByCountry(c *gin.Context) {
	resp, err := s.addressSvc.ListByCountry(c.Request.Context(), c.Param("country"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetAddressByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.addressSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteAddress(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.addressSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func isAddressValidationError(err error) bool {
	switch err {
	case addressdomain.ErrInvalidID,
		addressdomain.ErrInvalidUser,
		addressdomain.ErrInvalidStreet,
		addressdomain.ErrInvalidHouseNumber,
		addressdomain.ErrInvalidCity,
		addressdomain.ErrInvalidZip,
		addressdomain.ErrInvalidCountry:
		return true
	default:
		return false
	}
}
