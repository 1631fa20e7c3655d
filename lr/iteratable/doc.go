/*
Package iteratable implements iteratable container data structures.

Set is a special purpose set type, suitable mainly for implementing algorithms
around scanners, parsers, etc. These kinds of algorithms are often more
straightforward to describe as set constructions and operations.

Sets remember the order in which elements have been added. Iterating over a
set with IterateOnce/Next will visit elements added during the iteration, too,
which makes it easy to express fixpoint computations:

    S.IterateOnce()
    for S.Next() {
        x := S.Item()
        S.Add(f(x))   // will be visited later, if not already present
    }

Elements have to be comparable with Go's == operator.

Unusually, all set operations are destructive!

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package iteratable
