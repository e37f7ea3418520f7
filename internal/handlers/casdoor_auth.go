package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/casdoor/casdoor-go-sdk/casdoorsdk"
	"github.com/gin-gonic/gin"

	"github.com/skillpath/learning-service/internal/config"
	"github.com/skillpath/learning-service/internal/models"
)

// CasdoorAuthMiddleware verifies bearer tokens against Casdoor.
type CasdoorAuthMiddleware struct {
	client *casdoorsdk.Client
}

func NewCasdoorAuthMiddleware(cfg config.CasdoorConfig) *CasdoorAuthMiddleware {
	client := casdoorsdk.NewClient(
		cfg.Endpoint,
		cfg.ClientID,
		cfg.ClientSecret,
		cfg.Cert,
		cfg.Organization,
		cfg.Application,
	)

	return &CasdoorAuthMiddleware{client: client}
}

// AuthMiddleware rejects requests without a valid bearer token and sets the
// verified identity in the gin context.
func (cam *CasdoorAuthMiddleware) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authorization header missing"})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || !strings.EqualFold(tokenParts[0], "bearer") {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := cam.client.ParseJwtToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid or expired token"})
			c.Abort()
			return
		}

		user, err := userFromClaims(claims)
		if err != nil {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Set("user_email", user.Email)

		c.Next()
	}
}

// userFromClaims builds the request identity from verified JWT claims. The
// token subject is the stable user id; email and display name travel in the
// embedded user record.
func userFromClaims(claims *casdoorsdk.Claims) (*models.User, error) {
	userID := claims.Id
	if userID == "" {
		userID = claims.User.Id
	}
	if userID == "" {
		return nil, fmt.Errorf("token carries no user id")
	}

	name := claims.User.DisplayName
	if name == "" {
		name = claims.User.Name
	}

	return &models.User{
		ID:            userID,
		Email:         claims.User.Email,
		Name:          name,
		EmailVerified: true,
	}, nil
}

// GetUserFromContext extracts the verified identity set by AuthMiddleware.
func GetUserFromContext(c *gin.Context) (*models.User, error) {
	v, exists := c.Get("user")
	if !exists {
		return nil, fmt.Errorf("user not found in context")
	}

	user, ok := v.(*models.User)
	if !ok {
		return nil, fmt.Errorf("invalid user type in context")
	}

	return user, nil
}

// GetUserIDFromContext extracts the verified user id set by AuthMiddleware.
func GetUserIDFromContext(c *gin.Context) (string, error) {
	v, exists := c.Get("user_id")
	if !exists {
		return "", fmt.Errorf("user id not found in context")
	}

	id, ok := v.(string)
	if !ok || id == "" {
		return "", fmt.Errorf("invalid user id in context")
	}

	return id, nil
}
