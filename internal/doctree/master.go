package doctree

// RootPath is the path segment of the descriptor's root node.
const RootPath = "keras-tuner/"

var hyperparametersPage = PageNode{
	Path:  "hyperparameters",
	Title: "HyperParameters",
	Generate: []string{
		"kerastuner.HyperParameters",
		"kerastuner.HyperParameters.Boolean",
		"kerastuner.HyperParameters.Choice",
		"kerastuner.HyperParameters.Fixed",
		"kerastuner.HyperParameters.Float",
		"kerastuner.HyperParameters.Int",
		"kerastuner.HyperParameters.conditional_scope",
		"kerastuner.HyperParameters.get",
	},
}

var tunerMaster = PageNode{
	Path:  "tuners/",
	Title: "Tuners",
	Toc:   Bool(true),
	Children: []PageNode{
		{
			Path:  "base_tuner",
			Title: "The base Tuner class",
			Generate: []string{
				"kerastuner.Tuner",
				"kerastuner.Tuner.get_best_hyperparameters",
				"kerastuner.Tuner.get_best_models",
				"kerastuner.Tuner.get_state",
				"kerastuner.Tuner.load_model",
				"kerastuner.Tuner.on_epoch_begin",
				"kerastuner.Tuner.on_batch_begin",
				"kerastuner.Tuner.on_batch_end",
				"kerastuner.Tuner.on_epoch_end",
				"kerastuner.Tuner.run_trial",
				"kerastuner.Tuner.save_model",
				"kerastuner.Tuner.search",
				"kerastuner.Tuner.set_state",
			},
		},
		{
			Path:     "random",
			Title:    "RandomSearch",
			Generate: []string{"kerastuner.RandomSearch"},
		},
		{
			Path:     "bayesian",
			Title:    "BayesianOptimization",
			Generate: []string{"kerastuner.BayesianOptimization"},
		},
		{
			Path:     "hyperband",
			Title:    "Hyperband",
			Generate: []string{"kerastuner.Hyperband"},
		},
		{
			Path:     "sklearn",
			Title:    "Sklearn",
			Generate: []string{"kerastuner.tuners.Sklearn"},
		},
	},
}

var oracleMaster = PageNode{
	Path:  "oracles/",
	Title: "Oracles",
	Toc:   Bool(true),
	Children: []PageNode{
		{
			Path:  "base_oracle",
			Title: "The base Oracle class",
			Generate: []string{
				"kerastuner.Oracle",
				"kerastuner.Oracle.create_trial",
				"kerastuner.Oracle.end_trial",
				"kerastuner.Oracle.get_best_trials",
				"kerastuner.Oracle.get_state",
				"kerastuner.Oracle.set_state",
				"kerastuner.Oracle.update_trial",
			},
		},
		{
			Path:     "random",
			Title:    "RandomSearchOracle",
			Generate: []string{"kerastuner.oracles.RandomSearch"},
		},
		{
			Path:     "bayesian",
			Title:    "BayesianOptimizationOracle",
			Generate: []string{"kerastuner.oracles.BayesianOptimization"},
		},
		{
			Path:     "hyperband",
			Title:    "HyperbandOracle",
			Generate: []string{"kerastuner.oracles.Hyperband"},
		},
	},
}

var hypermodelMaster = PageNode{
	Path:  "hypermodels/",
	Title: "HyperModels",
	Toc:   Bool(true),
	Children: []PageNode{
		{
			Path:  "base_hypermodel",
			Title: "The base HyperModel class",
			Generate: []string{
				"kerastuner.HyperModel",
				"kerastuner.HyperModel.build",
			},
		},
		{
			Path:     "hyper_resnet",
			Title:    "HyperResNet",
			Generate: []string{"kerastuner.applications.HyperResNet"},
		},
		{
			Path:     "hyper_xception",
			Title:    "HyperXception",
			Generate: []string{"kerastuner.applications.HyperXception"},
		},
	},
}

var ktAPIMaster = PageNode{
	Path:  RootPath,
	Title: "Keras Tuner",
	Toc:   Bool(true),
	Children: []PageNode{
		hyperparametersPage,
		tunerMaster,
		oracleMaster,
		hypermodelMaster,
	},
}

// Master returns the complete API reference tree. Each call returns an
// independent copy, so callers may modify the result freely.
func Master() PageNode { return ktAPIMaster.Clone() }

// Hyperparameters returns the HyperParameters page.
func Hyperparameters() PageNode { return hyperparametersPage.Clone() }

// Tuners returns the tuners sub-tree.
func Tuners() PageNode { return tunerMaster.Clone() }

// Oracles returns the oracles sub-tree.
func Oracles() PageNode { return oracleMaster.Clone() }

// HyperModels returns the hypermodels sub-tree.
func HyperModels() PageNode { return hypermodelMaster.Clone() }
