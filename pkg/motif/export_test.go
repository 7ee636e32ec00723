package motif

var FindIter = findIter
