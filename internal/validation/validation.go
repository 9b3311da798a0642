package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Violation décrit une contrainte non respectée sur un champ. Toutes les
// violations sont retournées d'un coup, pas seulement la première.
type Violation struct {
	Property string `json:"property"`
	Message  string `json:"message"`
}

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func notBlank(list []Violation, property, value, message string) []Violation {
	if strings.TrimSpace(value) == "" {
		return append(list, Violation{Property: property, Message: message})
	}
	return list
}

func length(list []Violation, property, value, label string, min, max int) []Violation {
	// Un champ vide est déjà couvert par notBlank.
	if value == "" {
		return list
	}
	n := utf8.RuneCountInString(value)
	if n < min {
		return append(list, Violation{
			Property: property,
			Message:  fmt.Sprintf("%s doit faire au moins %d caractères", label, min),
		})
	}
	if n > max {
		return append(list, Violation{
			Property: property,
			Message:  fmt.Sprintf("%s ne peut pas faire plus de %d caractères", label, max),
		})
	}
	return list
}

func email(list []Violation, property, value string) []Violation {
	if value != "" && !emailRegexp.MatchString(value) {
		return append(list, Violation{Property: property, Message: "Cet email est invalide"})
	}
	return list
}

// ValidateBrand vérifie le nom d'une marque (1 à 55 caractères, obligatoire).
func ValidateBrand(name string) []Violation {
	var v []Violation
	v = notBlank(v, "name", name, "Un nom de marque est obligatoire")
	v = length(v, "name", name, "Le nom", 1, 55)
	return v
}

// ValidateCategory vérifie le nom d'une catégorie (1 à 55 caractères, obligatoire).
func ValidateCategory(name string) []Violation {
	var v []Violation
	v = notBlank(v, "name", name, "Un nom de catégorie est obligatoire")
	v = length(v, "name", name, "Le nom", 1, 55)
	return v
}

// ValidateProduct vérifie les champs d'un produit. Le prix est passé en
// pointeur pour distinguer « absent » de zéro.
func ValidateProduct(name, description, sku string, price *float64) []Violation {
	var v []Violation
	v = notBlank(v, "name", name, "Un nom de produit est obligatoire")
	v = length(v, "name", name, "Le nom", 1, 100)
	v = notBlank(v, "description", description, "La description est obligatoire")
	v = length(v, "description", description, "La description", 1, 300)
	if price == nil {
		v = append(v, Violation{Property: "price", Message: "Le prix est obligatoire"})
	}
	v = notBlank(v, "sku", sku, "Le sku est obligatoire")
	return v
}

// ValidateClient vérifie les champs d'un client. Le mot de passe est passé en
// pointeur : nil signifie « non exigé » (édition sans changement de mot de
// passe).
func ValidateClient(name, emailAddr string, password *string) []Violation {
	var v []Violation
	v = notBlank(v, "name", name, "Ce champ ne peut pas être vide")
	v = length(v, "name", name, "Le nom", 2, 100)
	v = notBlank(v, "email", emailAddr, "Ce champ ne peut pas être vide")
	v = length(v, "email", emailAddr, "L'email", 2, 180)
	v = email(v, "email", emailAddr)
	if password != nil {
		v = notBlank(v, "password", *password, "Un mot de passe est obligatoire")
	}
	return v
}

// ValidateUser vérifie les champs d'un utilisateur.
func ValidateUser(firstname, lastname, emailAddr string) []Violation {
	var v []Violation
	v = notBlank(v, "firstname", firstname, "Un prénom est obligatoire")
	v = length(v, "firstname", firstname, "Le prénom", 1, 100)
	v = notBlank(v, "lastname", lastname, "Un nom est obligatoire")
	v = length(v, "lastname", lastname, "Le nom", 1, 100)
	v = notBlank(v, "email", emailAddr, "Un email est obligatoire")
	v = length(v, "email", emailAddr, "L'email", 2, 180)
	v = email(v, "email", emailAddr)
	return v
}

// ValidateMember vérifie les champs d'un membre (mêmes règles que User).
func ValidateMember(firstname, lastname, emailAddr string) []Violation {
	return ValidateUser(firstname, lastname, emailAddr)
}

// EmailTaken construit la violation d'unicité d'email.
func EmailTaken() Violation {
	return Violation{Property: "email", Message: "Cet email est déjà utilisé"}
}
