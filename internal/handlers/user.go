package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mataxelle/BilMo/internal/models"
	"github.com/mataxelle/BilMo/internal/repository"
	"github.com/mataxelle/BilMo/internal/utils"
	"github.com/mataxelle/BilMo/internal/validation"
)

type UserProvider interface {
	Find(id uint) (*models.User, error)
	FindPage(page, limit int) ([]models.User, error)
	FindByClient(clientID uint, page, limit int) ([]models.User, error)
	EmailTaken(email string, excludeID uint) (bool, error)
	Save(user *models.User) error
	Remove(user *models.User) error
}

type ClientFinder interface {
	Find(id uint) (*models.Client, error)
}

type UserHandler struct {
	repo    UserProvider
	clients ClientFinder
}

func NewUserHandler(repo UserProvider, clients ClientFinder) *UserHandler {
	return &UserHandler{repo: repo, clients: clients}
}

// resolveClient retourne nil pour un id absent ou inconnu (référence null).
func (h *UserHandler) resolveClient(id *uint) (*uint, error) {
	if id == nil {
		return nil, nil
	}
	client, err := h.clients.Find(*id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client.ID, nil
}

func (h *UserHandler) List(c *gin.Context) {
	page, limit, _ := pageParams(c, repository.DefaultLimit)

	users, err := h.repo.FindPage(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture utilisateurs"})
		return
	}

	canMutate := isAuthenticated(c)
	out := make([]userRead, len(users))
	for i, u := range users {
		out[i] = newUserRead(u, canMutate)
	}

	c.JSON(http.StatusOK, out)
}

// ClientList liste les utilisateurs créés par un client donné.
func (h *UserHandler) ClientList(c *gin.Context) {
	clientID, ok := pathID(c)
	if !ok {
		return
	}

	page, limit, _ := pageParams(c, repository.DefaultLimit)

	users, err := h.repo.FindByClient(clientID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture utilisateurs"})
		return
	}

	canMutate := isAuthenticated(c)
	out := make([]userRead, len(users))
	for i, u := range users {
		out[i] = newUserRead(u, canMutate)
	}

	c.JSON(http.StatusOK, out)
}

func (h *UserHandler) Create(c *gin.Context) {
	var input struct {
		Firstname string `json:"firstname"`
		Lastname  string `json:"lastname"`
		Email     string `json:"email"`
		CreatedBy *uint  `json:"createdBy"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	violations := validation.ValidateUser(input.Firstname, input.Lastname, input.Email)

	if input.Email != "" {
		taken, err := h.repo.EmailTaken(input.Email, 0)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur vérification email"})
			return
		}
		if taken {
			violations = append(violations, validation.EmailTaken())
		}
	}

	if len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": violations})
		return
	}

	// L'id explicite du body prime, sinon le principal authentifié.
	creatorID := input.CreatedBy
	if creatorID == nil {
		creatorID = principalID(c)
	}
	createdByID, err := h.resolveClient(creatorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture client"})
		return
	}

	user := models.User{
		Firstname:   input.Firstname,
		Lastname:    input.Lastname,
		Email:       input.Email,
		CreatedByID: createdByID,
	}

	if err := h.repo.Save(&user); err != nil {
		utils.LogFailedAction(c, "create", "user", "", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création"})
		return
	}

	utils.LogAction(c, "create", "user", fmt.Sprint(user.ID))

	c.Header("location", detailHref("user", user.ID))
	c.JSON(http.StatusOK, newUserRead(user, isAuthenticated(c)))
}

func (h *UserHandler) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.repo.Find(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture utilisateur"})
		return
	}

	c.JSON(http.StatusOK, newUserRead(*user, isAuthenticated(c)))
}

func (h *UserHandler) Edit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.repo.Find(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture utilisateur"})
		return
	}

	var input struct {
		Firstname *string `json:"firstname"`
		Lastname  *string `json:"lastname"`
		Email     *string `json:"email"`
		ClientID  *uint   `json:"clientId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if input.Firstname != nil {
		user.Firstname = *input.Firstname
	}
	if input.Lastname != nil {
		user.Lastname = *input.Lastname
	}
	if input.Email != nil {
		user.Email = *input.Email
	}

	violations := validation.ValidateUser(user.Firstname, user.Lastname, user.Email)

	taken, err := h.repo.EmailTaken(user.Email, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur vérification email"})
		return
	}
	if taken {
		violations = append(violations, validation.EmailTaken())
	}

	if len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": violations})
		return
	}

	updaterID := input.ClientID
	if updaterID == nil {
		updaterID = principalID(c)
	}
	updatedByID, err := h.resolveClient(updaterID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture client"})
		return
	}
	user.UpdatedByID = updatedByID

	if err := h.repo.Save(user); err != nil {
		utils.LogFailedAction(c, "edit", "user", fmt.Sprint(id), err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la mise à jour"})
		return
	}

	utils.LogAction(c, "edit", "user", fmt.Sprint(id))

	c.Status(http.StatusNoContent)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.repo.Find(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture utilisateur"})
		return
	}

	if err := h.repo.Remove(user); err != nil {
		utils.LogFailedAction(c, "delete", "user", fmt.Sprint(id), err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la suppression"})
		return
	}

	utils.LogAction(c, "delete", "user", fmt.Sprint(id))

	c.Status(http.StatusNoContent)
}
