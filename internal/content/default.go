package content

// DefaultContent returns the hard-coded content tree used to bootstrap the
// site_content collection on first read. The same default exists in the
// front-end; it is duplicated here on purpose so the backend can bootstrap
// standalone. Returns a fresh tree on every call so callers may mutate it.
func DefaultContent() map[string]interface{} {
	return map[string]interface{}{
		"practice": map[string]interface{}{
			"name":         "Docteur Charlotte Gendre",
			"specialty":    "Chirurgien-Dentiste",
			"citySeo":      "Seysses",
			"address":      "680 Route de Toulouse, 31600 Seysses, France",
			"phoneDisplay": "05 62 20 47 53",
			"phoneE164":    "+33562204753",
		},
		"hero": map[string]interface{}{
			"title":        "Des soins dentaires modernes, avec une attention sincère à votre confort",
			"subtitle":     "Bienvenue au cabinet du Docteur Charlotte Gendre à Seysses. Une prise en charge claire, des explications simples, et une approche centrée sur la prévention.",
			"primaryCta":   "Prendre rendez-vous",
			"secondaryCta": "Contacter le cabinet",
			"reassurance":  "Cabinet à Seysses • Soins sur rendez-vous • Urgences selon disponibilité",
		},
		"aboutDoctor": map[string]interface{}{
			"title":    "Le praticien",
			"text":     "Le Docteur Charlotte Gendre vous reçoit dans un cadre calme et professionnel. L'objectif : vous proposer des soins adaptés, expliqués, et réalisés avec rigueur.",
			"reserved": "Zone réservée : diplômes, formations, spécialisations, équipements (à compléter).",
		},
		"aboutOffice": map[string]interface{}{
			"title": "Le cabinet",
			"text":  "Un environnement soigné, une hygiène irréprochable et un parcours patient fluide. Le cabinet s'attache à instaurer un climat de confiance, notamment pour les patients anxieux.",
			"images": []interface{}{
				map[string]interface{}{
					"src":   "https://images.unsplash.com/photo-1629909613638-0e4a1fad8f81?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2NzB8MHwxfHNlYXJjaHwyfHxjYWJpbmV0JTIwZGVudGFpcmUlMjBtb2Rlcm5lfGVufDB8fHx8MTc2NTk4NDI3MXww&ixlib=rb-4.1.0&q=85",
					"alt":   "Salle de soins dentaire moderne",
					"label": "Salle de soins",
				},
				map[string]interface{}{
					"src":   "https://images.unsplash.com/photo-1598256989800-fe5f95da9787?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2NzB8MHwxfHNlYXJjaHwxfHxjYWJpbmV0JTIwZGVudGFpcmUlMjBtb2Rlcm5lfGVufDB8fHx8MTc2NTk4NDI3MXww&ixlib=rb-4.1.0&q=85",
					"alt":   "Fauteuil dentaire",
					"label": "Équipement",
				},
			},
		},
		"services": map[string]interface{}{
			"title": "Soins & prestations",
			"intro": "Les contenus ci-dessous sont des emplacements modifiables : vous pourrez ajouter, retirer ou préciser chaque soin selon les besoins du cabinet.",
			"categories": []interface{}{
				map[string]interface{}{
					"id":   "prevention",
					"name": "Prévention",
					"items": []interface{}{
						map[string]interface{}{
							"title":       "Bilan et conseils personnalisés",
							"description": "Évaluation, explications, et recommandations adaptées à votre hygiène bucco-dentaire.",
						},
						map[string]interface{}{
							"title":       "Détartrage",
							"description": "Entretien régulier visant à limiter l'inflammation gingivale et les problèmes parodontaux.",
						},
					},
				},
				map[string]interface{}{
					"id":   "soins",
					"name": "Soins dentaires",
					"items": []interface{}{
						map[string]interface{}{
							"title":       "Traitement des caries",
							"description": "Soins conservateurs, réalisés avec précision et explications étape par étape.",
						},
						map[string]interface{}{
							"title":       "Endodontie (dévitalisation)",
							"description": "Prise en charge lorsque la pulpe est atteinte, dans le respect du confort du patient.",
						},
					},
				},
				map[string]interface{}{
					"id":   "esthetique",
					"name": "Esthétique",
					"items": []interface{}{
						map[string]interface{}{
							"title":       "Éclaircissement (blanchiment)",
							"description": "Option esthétique à discuter en consultation (indications, contre-indications, suivi).",
						},
						map[string]interface{}{
							"title":       "Facettes / restaurations esthétiques",
							"description": "Solutions sur-mesure, selon l'indication clinique et vos objectifs.",
						},
					},
				},
			},
		},
		"practical": map[string]interface{}{
			"title":      "Informations pratiques",
			"accessNote": "Vous pouvez appeler le cabinet pour toute question. En cas de douleur aiguë, expliquez vos symptômes : nous vous orienterons au mieux selon les disponibilités.",
			"hours": []interface{}{
				map[string]interface{}{"day": "Lundi", "hours": "09:00–13:30 / 14:30–19:00"},
				map[string]interface{}{"day": "Mardi", "hours": "08:00–16:30"},
				map[string]interface{}{"day": "Mercredi", "hours": "09:00–19:00"},
				map[string]interface{}{"day": "Jeudi", "hours": "Fermé"},
				map[string]interface{}{"day": "Vendredi", "hours": "08:00–19:00"},
				map[string]interface{}{"day": "Samedi", "hours": "Fermé"},
				map[string]interface{}{"day": "Dimanche", "hours": "Fermé"},
			},
		},
		"contact": map[string]interface{}{
			"title":      "Contact",
			"formIntro":  "Vous pouvez nous écrire via ce formulaire. Pour une demande urgente, privilégiez l'appel téléphonique.",
			"rgpdNotice": "En envoyant ce formulaire, vous acceptez que les informations saisies soient utilisées pour répondre à votre demande. Données conservées le temps du traitement.",
		},
		"faq": map[string]interface{}{
			"title": "Questions fréquentes",
			"items": []interface{}{
				map[string]interface{}{
					"q": "Le cabinet prend-il de nouveaux patients ?",
					"a": "Zone réservée : à préciser selon la disponibilité. Vous pouvez appeler le cabinet pour confirmation.",
				},
				map[string]interface{}{
					"q": "Proposez-vous des rendez-vous d'urgence ?",
					"a": "Selon les disponibilités du jour. En cas de douleur importante, contactez-nous par téléphone.",
				},
				map[string]interface{}{
					"q": "Comment préparer ma première consultation ?",
					"a": "Apportez votre carte Vitale, votre mutuelle et, si possible, tout élément médical utile (ordonnances, radios récentes).",
				},
			},
		},
		"legal": map[string]interface{}{
			"title": "Mentions légales & confidentialité",
			"intro": "Ce contenu est fourni à titre de base et devra être complété avec les informations légales du cabinet (SIRET, RPPS, hébergeur, email, etc.).",
			"sections": []interface{}{
				map[string]interface{}{
					"title":   "Éditeur du site",
					"content": "Docteur Charlotte Gendre – Chirurgien-Dentiste\nAdresse : 680 Route de Toulouse, 31600 Seysses, France\nTéléphone : 05 62 20 47 53\nEmail : (à compléter)",
				},
				map[string]interface{}{
					"title":   "Hébergement",
					"content": "(à compléter : nom, adresse et contact de l'hébergeur)",
				},
				map[string]interface{}{
					"title":   "Données personnelles (RGPD)",
					"content": "Les données collectées via le formulaire de contact sont destinées uniquement à répondre à votre demande. Vous pouvez demander l'accès, la rectification ou la suppression de vos données en contactant le cabinet (email à compléter).",
				},
				map[string]interface{}{
					"title":   "Cookies",
					"content": "Ce site peut utiliser des cookies techniques nécessaires au bon fonctionnement. Aucun cookie publicitaire n'est mis en place par défaut.",
				},
			},
		},
	}
}
