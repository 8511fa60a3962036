package seed

// CleanupEmptyCategories supprime les catégories sans aucune prestation
// liée et retourne le nombre de lignes retirées. Passage de nettoyage pur,
// une seule requête.
func (s *Seeder) CleanupEmptyCategories() (int64, error) {
	res := s.db.Exec(`
		DELETE FROM services_categories
		WHERE id NOT IN (SELECT DISTINCT category_id FROM services)
	`)
	return res.RowsAffected, res.Error
}
