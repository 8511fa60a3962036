package schedule

import (
	"sort"

	"github.com/AnarosBeauty/salon-scheduler/internal/domain/role"
)

// Visibility détermine quels employés apparaissent sur le calendrier.
// C'est une variante fermée : AllStaff (défaut) ou un ensemble explicite.
// "Tout le personnel" et "ensemble vide" sont deux états distincts — jamais
// un nil déguisé.
type Visibility struct {
	all bool
	ids map[string]struct{}
}

func AllStaff() Visibility {
	return Visibility{all: true}
}

func ExplicitSet(ids ...string) Visibility {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return Visibility{ids: set}
}

func (v Visibility) IsAll() bool {
	return v.all
}

func (v Visibility) Includes(id string) bool {
	if v.all {
		return true
	}
	_, ok := v.ids[id]
	return ok
}

// IDs retourne l'ensemble explicite trié. Vide et ok=false pour AllStaff.
func (v Visibility) IDs() ([]string, bool) {
	if v.all {
		return nil, false
	}
	out := make([]string, 0, len(v.ids))
	for id := range v.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, true
}

// Toggle ajoute ou retire un employé. Le défaut AllStaff est matérialisé en
// ensemble complet au premier clic, comme dans le calendrier.
func (v Visibility) Toggle(id string, roster []string) Visibility {
	set := make(map[string]struct{})
	if v.all {
		for _, r := range roster {
			set[r] = struct{}{}
		}
	} else {
		for k := range v.ids {
			set[k] = struct{}{}
		}
	}

	if _, ok := set[id]; ok {
		delete(set, id)
	} else {
		set[id] = struct{}{}
	}

	return Visibility{ids: set}
}

// ToggleAll agit sur le sous-ensemble filtré (résultat de la recherche),
// pas sur la liste globale : si tout le sous-ensemble est déjà visible on
// vide la sélection, sinon on sélectionne exactement ce sous-ensemble.
func (v Visibility) ToggleAll(filtered []string) Visibility {
	allSelected := len(filtered) > 0
	for _, id := range filtered {
		if !v.Includes(id) {
			allSelected = false
			break
		}
	}

	if allSelected {
		return ExplicitSet()
	}
	return ExplicitSet(filtered...)
}

// ForRole force un compte "staff" sur son propre agenda, sans contournement
// possible par le filtre.
func ForRole(r role.Role, selfID string, requested Visibility) Visibility {
	if r.SeesOnlyOwnAgenda() {
		return ExplicitSet(selfID)
	}
	return requested
}
