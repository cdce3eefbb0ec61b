// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodTree is the canonical name for the Tree constructor.
	MethodTree = "Tree"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodEdges is the canonical name for the Edges constructor.
	MethodEdges = "Edges"
)

//-----------------------------------------------------------------------------
// Vertex ID Defaults
//-----------------------------------------------------------------------------

// CenterVertexID is the identifier of the hub vertex built by Star.
const CenterVertexID = "Center"

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

const (
	// MinPathNodes is the smallest path with an edge.
	MinPathNodes = 2
	// MinCycleNodes is the smallest ring without self-loops or repeated edges.
	MinCycleNodes = 3
	// MinStarNodes is a hub plus one leaf.
	MinStarNodes = 2
	// MinCompleteNodes allows the trivial K_1.
	MinCompleteNodes = 1
	// MinGridDim is the smallest grid side.
	MinGridDim = 1
	// MinTreeArity is the smallest branching factor of Tree.
	MinTreeArity = 1
	// MinTreeDepth is a tree made of the root alone.
	MinTreeDepth = 1
	// MinRandomSparseNodes is the smallest RandomSparse vertex count.
	MinRandomSparseNodes = 1
)

//-----------------------------------------------------------------------------
// Probability bounds
//-----------------------------------------------------------------------------

const (
	// MinProbability is the lower bound of RandomSparse's p.
	MinProbability = 0.0
	// MaxProbability is the upper bound of RandomSparse's p.
	MaxProbability = 1.0
)
