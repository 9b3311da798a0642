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

type MemberProvider interface {
	Find(id uint) (*models.Member, error)
	FindPage(page, limit int) ([]models.Member, error)
	FindByUser(userID uint, page, limit int) ([]models.Member, error)
	EmailTaken(email string, excludeID uint) (bool, error)
	Save(member *models.Member) error
	Remove(member *models.Member) error
}

type UserFinder interface {
	Find(id uint) (*models.User, error)
}

type MemberHandler struct {
	repo  MemberProvider
	users UserFinder
}

func NewMemberHandler(repo MemberProvider, users UserFinder) *MemberHandler {
	return &MemberHandler{repo: repo, users: users}
}

func (h *MemberHandler) resolveUser(id *uint) (*uint, error) {
	if id == nil {
		return nil, nil
	}
	user, err := h.users.Find(*id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user.ID, nil
}

func (h *MemberHandler) List(c *gin.Context) {
	page, limit, _ := pageParams(c, repository.DefaultLimit)

	members, err := h.repo.FindPage(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture membres"})
		return
	}

	canMutate := isAuthenticated(c)
	out := make([]memberRead, len(members))
	for i, m := range members {
		out[i] = newMemberRead(m, canMutate)
	}

	c.JSON(http.StatusOK, out)
}

// UserList liste les membres créés par un utilisateur donné.
func (h *MemberHandler) UserList(c *gin.Context) {
	userID, ok := pathID(c)
	if !ok {
		return
	}

	page, limit, _ := pageParams(c, repository.DefaultLimit)

	members, err := h.repo.FindByUser(userID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture membres"})
		return
	}

	canMutate := isAuthenticated(c)
	out := make([]memberRead, len(members))
	for i, m := range members {
		out[i] = newMemberRead(m, canMutate)
	}

	c.JSON(http.StatusOK, out)
}

func (h *MemberHandler) Create(c *gin.Context) {
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

	violations := validation.ValidateMember(input.Firstname, input.Lastname, input.Email)

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

	// Le créateur d'un membre est un User : uniquement l'id explicite du body.
	createdByID, err := h.resolveUser(input.CreatedBy)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture utilisateur"})
		return
	}

	member := models.Member{
		Firstname:   input.Firstname,
		Lastname:    input.Lastname,
		Email:       input.Email,
		CreatedByID: createdByID,
	}

	if err := h.repo.Save(&member); err != nil {
		utils.LogFailedAction(c, "create", "member", "", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création"})
		return
	}

	utils.LogAction(c, "create", "member", fmt.Sprint(member.ID))

	c.Header("location", detailHref("member", member.ID))
	c.JSON(http.StatusOK, newMemberRead(member, isAuthenticated(c)))
}

func (h *MemberHandler) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	member, err := h.repo.Find(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Membre introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture membre"})
		return
	}

	c.JSON(http.StatusOK, newMemberRead(*member, isAuthenticated(c)))
}

func (h *MemberHandler) Edit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	member, err := h.repo.Find(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Membre introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture membre"})
		return
	}

	var input struct {
		Firstname *string `json:"firstname"`
		Lastname  *string `json:"lastname"`
		Email     *string `json:"email"`
		UserID    *uint   `json:"userId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if input.Firstname != nil {
		member.Firstname = *input.Firstname
	}
	if input.Lastname != nil {
		member.Lastname = *input.Lastname
	}
	if input.Email != nil {
		member.Email = *input.Email
	}

	violations := validation.ValidateMember(member.Firstname, member.Lastname, member.Email)

	taken, err := h.repo.EmailTaken(member.Email, member.ID)
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

	updatedByID, err := h.resolveUser(input.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture utilisateur"})
		return
	}
	member.UpdatedByID = updatedByID

	if err := h.repo.Save(member); err != nil {
		utils.LogFailedAction(c, "edit", "member", fmt.Sprint(id), err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la mise à jour"})
		return
	}

	utils.LogAction(c, "edit", "member", fmt.Sprint(id))

	c.Status(http.StatusNoContent)
}

func (h *MemberHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	member, err := h.repo.Find(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Membre introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture membre"})
		return
	}

	if err := h.repo.Remove(member); err != nil {
		utils.LogFailedAction(c, "delete", "member", fmt.Sprint(id), err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la suppression"})
		return
	}

	utils.LogAction(c, "delete", "member", fmt.Sprint(id))

	c.Status(http.StatusNoContent)
}
